// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/yeetrun/argtok/pkg/argtok"
)

const (
	kindPaired = "paired"
	kindSingle = "single"
)

// FormatValue renders v for display. Strings are quoted so that empty and
// space-only values stay visible.
func FormatValue(v argtok.Value) string {
	switch v := v.(type) {
	case argtok.StringValue:
		return fmt.Sprintf("%q", string(v))
	case nil:
		return ""
	}
	return v.String()
}

// WriteTable writes args as an aligned table. Whole lines are colored so
// escape codes do not disturb column widths.
func WriteTable(w io.Writer, args []argtok.Argument, c Colorizer) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tTYPE\tVALUE")
	for _, a := range args {
		switch a := a.(type) {
		case argtok.Paired:
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Name, kindPaired, a.Value.Type(), FormatValue(a.Value))
		case argtok.Single:
			fmt.Fprintf(tw, "%s\t%s\t-\t\n", a.Name, kindSingle)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sc := bufio.NewScanner(&buf)
	for i := -1; sc.Scan(); i++ {
		line := sc.Text()
		attrs := ColorHeader
		if i >= 0 && i < len(args) {
			if _, ok := args[i].(argtok.Single); ok {
				attrs = ColorSingle
			} else {
				attrs = ColorPaired
			}
		}
		if _, err := fmt.Fprintln(w, c.Wrap(attrs, line)); err != nil {
			return err
		}
	}
	return sc.Err()
}

type jsonArgument struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Type  string `json:"type,omitempty"`
	Value any    `json:"value,omitempty"`
}

func toJSON(a argtok.Argument) jsonArgument {
	switch a := a.(type) {
	case argtok.Paired:
		ja := jsonArgument{Name: string(a.Name), Kind: kindPaired, Type: a.Value.Type().String()}
		switch v := a.Value.(type) {
		case argtok.StringValue:
			ja.Value = string(v)
		case argtok.UintValue:
			ja.Value = uint64(v)
		case argtok.BoolValue:
			ja.Value = bool(v)
		}
		return ja
	}
	return jsonArgument{Name: string(a.Option()), Kind: kindSingle}
}

// WriteJSON writes args as an indented JSON array.
func WriteJSON(w io.Writer, args []argtok.Argument) error {
	out := make([]jsonArgument, 0, len(args))
	for _, a := range args {
		out = append(out, toJSON(a))
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
