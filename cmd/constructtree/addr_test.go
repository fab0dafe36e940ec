package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/constructhub/constructtree/constructs"
)

func TestAddrCmd_MatchesComputeAddress(t *testing.T) {
	var out bytes.Buffer
	addrCmd.SetOut(&out)

	ids := []string{"App", "StorageStack", "Assets"}
	if err := runAddr(addrCmd, ids); err != nil {
		t.Fatalf("runAddr: %v", err)
	}

	want := constructs.ComputeAddress(ids)
	got := strings.TrimSpace(out.String())
	if got != want {
		t.Fatalf("addr command printed %q, want %q", got, want)
	}
}
