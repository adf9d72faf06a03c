// Package main parses and formats a datetime in order to test WASM compilation.
package main

import (
	"context"
	"fmt"

	"github.com/theory/isodatetime/datetime"
	"github.com/theory/isodatetime/datetime/format"
)

func main() {
	// Parse a datetime with an offset.
	ctx := context.Background()
	res, _ := datetime.Parse(ctx, `2016-01-01T00:00:00.123456789012+05:30`)

	// Format it back in UTC.
	str, _ := datetime.Format(ctx, res.Value, format.WithUnit(res.Unit))

	// Show the result.
	//nolint:forbidigo
	fmt.Printf("%s\n", str)
}
