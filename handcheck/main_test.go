package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rouhjp/rouh-mahjong-web-sub001/common/log"
)

func TestRootCmd_LogsConfigAtDebug(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	stdout := os.Stdout
	os.Stdout = w
	defer func() {
		os.Stdout = stdout
		log.InitLog("handcheck", "info")
	}()

	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"--logLevel", "debug", "ready", "M1 M2 M3 M4 M5 M6 M7 M8 M9 P1 P1 P2 P3"})
	execErr := rootCmd.Execute()
	w.Close()
	os.Stdout = stdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if execErr != nil {
		t.Fatalf("execute: %v", execErr)
	}
	s := string(out)
	if !strings.Contains(s, "配置文件") || !strings.Contains(s, "AppName:handcheck") {
		t.Fatalf("config not logged: %q", s)
	}
	if strings.Contains(s, "%!") {
		t.Fatalf("bad format verb in log output: %q", s)
	}
}
