package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFakeLoggerKeepsLevels(t *testing.T) {
	assert := require.New(t)
	log := NewFakeLogger()

	log.Debug(context.Background(), "debug")
	log.Info(context.Background(), "info", Entry("k", 1))
	log.Warning(context.Background(), "warning")
	log.Error(context.Background(), "error")

	records := log.Records()
	assert.Len(records, 4)
	assert.Equal(DEBUG, records[0].Level)
	assert.Equal(INFO, records[1].Level)
	assert.Equal([]LogEntry{{Key: "k", Value: 1}}, records[1].Entries)
	assert.Equal(WARNING, records[2].Level)
	assert.Equal(ERROR, records[3].Level)
}

func TestErrorHelper(t *testing.T) {
	assert := require.New(t)
	log := NewFakeLogger()
	err := errors.New("boom")

	Error(context.Background(), log, err, Entry("op", "test"))

	records := log.Records()
	assert.Len(records, 1)
	assert.Equal(ERROR, records[0].Level)
	assert.Equal("boom", records[0].Msg)
	assert.Equal([]LogEntry{{Key: "err", Value: err}, {Key: "op", Value: "test"}}, records[0].Entries)
}
