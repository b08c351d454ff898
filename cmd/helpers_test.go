package cmd_test

import (
	"io"
	"net/http"
	"os"
)

func mkdirAndChdir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.Chdir(dir)
}

func readBody(r *http.Request) string {
	defer r.Body.Close()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	return string(data)
}
