package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"WhaleEye/internal/domain/models"

	"github.com/spf13/cobra"
)

type stubOrchestrator struct {
	got *models.OrchestratorRequest
}

func (s *stubOrchestrator) Handle(_ context.Context, req *models.OrchestratorRequest) (*models.OrchestratorResponse, error) {
	s.got = req
	return &models.OrchestratorResponse{
		Role:      string(req.UserRole),
		QueryType: models.QueryGeneral,
		Response:  "hello back",
	}, nil
}

func TestRunAskPrintsReply(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	orch := &stubOrchestrator{}
	req := &models.OrchestratorRequest{Message: "hi", UserRole: "investor", RequestID: "r-1"}
	if err := runAsk(context.Background(), cmd, orch, req); err != nil {
		t.Fatalf("runAsk: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Investor", "query: general", "r-1", "hello back"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if orch.got != req {
		t.Fatalf("request not forwarded")
	}
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "ask"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Fatalf("missing %s command: %v", name, err)
		}
	}
}
