package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/csskit/internal/config"
)

func readRecords(t *testing.T, path string) []SpanRecord {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []SpanRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r SpanRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		records = append(records, r)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(config.TracingConfig{})
	require.NoError(t, err)
	require.False(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), "noop")
	require.False(t, span.SpanContext().IsValid(), "disabled tracer should produce no-op spans")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "traces.jsonl")
	provider, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: "file", FilePath: path})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	ctx, root := StartCommand(context.Background(), provider.Tracer(), "check")
	_, span := StartFile(ctx, provider.Tracer(), SpanParse, "a.css", 12)
	EndFile(span, 2, nil)
	root.End()

	require.NoError(t, provider.Shutdown(context.Background()))

	records := readRecords(t, path)
	require.Len(t, records, 2)
	parse := records[0]
	require.Equal(t, SpanParse, parse.Name)
	require.Equal(t, "OK", parse.Status)
	require.Equal(t, "a.css", parse.Attributes[AttrFilePath])
	require.EqualValues(t, 2, parse.Attributes[AttrDiagnosticCount])
	require.Equal(t, records[1].SpanID, parse.ParentID)
	require.Equal(t, records[1].TraceID, parse.TraceID)
}

func TestNewProvider_Exporters(t *testing.T) {
	tests := []struct {
		exporter string
		wantErr  string
	}{
		{exporter: "stdout"},
		{exporter: "none"},
		{exporter: ""},
		{exporter: "zipkin", wantErr: "unsupported exporter"},
	}
	for _, tt := range tests {
		t.Run(tt.exporter, func(t *testing.T) {
			provider, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: tt.exporter})
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				require.Nil(t, provider)
				return
			}
			require.NoError(t, err)
			require.True(t, provider.Enabled())
			require.NoError(t, provider.Shutdown(context.Background()))
		})
	}
}

func TestEndFile_RecordsError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := tp.Tracer("test")

	_, span := StartFile(context.Background(), tracer, SpanCheck, "b.css", 0)
	EndFile(span, 0, errors.New("permission denied"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, codes.Error, ended[0].Status().Code)
	require.Equal(t, "permission denied", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1, "error should be recorded as an event")
}

func TestFileExporter_AppendsAndShutsDown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"existing"}`+"\n"), 0o600))

	exporter, err := NewFileExporter(path)
	require.NoError(t, err)

	stubs := tracetest.SpanStubs{{Name: "one"}, {Name: "two"}}
	require.NoError(t, exporter.ExportSpans(context.Background(), stubs.Snapshots()))
	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()))
	require.Error(t, exporter.ExportSpans(context.Background(), stubs.Snapshots()))

	records := readRecords(t, path)
	require.Len(t, records, 3)
	require.Equal(t, "existing", records[0].Name)
	require.Equal(t, "one", records[1].Name)
	require.Equal(t, "UNSET", records[2].Status)
}
