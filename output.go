package main

import (
	"bufio"
	"io"
)

func writeAnswers(w io.Writer, answers []string) error {
	bw := bufio.NewWriter(w)
	for _, a := range answers {
		if _, err := bw.WriteString(a); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
