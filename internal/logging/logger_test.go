package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-1")
	assert.Equal(t, "rid-1", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestLoggerFormat(t *testing.T) {
	buf := captureLog(t)

	NewLogger(WithRequestID(context.Background(), "abc")).LogError("analyze", errors.New("boom"))
	assert.Equal(t, "[error] request_id=abc operation=analyze error=boom\n", buf.String())

	buf.Reset()
	NewLogger(context.Background()).LogWarnf("kanban", "reason=%s", "no_json")
	assert.Equal(t, "[warn] request_id=unknown operation=kanban reason=no_json\n", buf.String())

	buf.Reset()
	NewLogger(WithRequestID(context.Background(), "abc")).LogErrorf("submit_project", "project_id=%s error=%v", "p1", errors.New("timeout"))
	assert.Equal(t, "[error] request_id=abc operation=submit_project project_id=p1 error=timeout\n", buf.String())
}
