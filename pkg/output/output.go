// Package output writes extracted CIDR blocks one per line.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write writes each cidr to w followed by a newline.
func Write(w io.Writer, cidrs []string) error {
	bw := bufio.NewWriter(w)
	for _, cidr := range cidrs {
		if _, err := bw.WriteString(cidr + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates or truncates filename, writes cidrs to it and then prints
// a confirmation naming the file to status.
func WriteFile(filename string, cidrs []string, status io.Writer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := Write(f, cidrs); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(status, "CIDR blocks extracted and saved to %s\n", filename)
	return err
}
