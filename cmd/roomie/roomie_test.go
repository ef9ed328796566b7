package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/roomiesync/internal/app"
	"github.com/mmynk/roomiesync/internal/models"
)

func TestResolveRoommate(t *testing.T) {
	roommates := append(models.SeedRoommates(), models.Roommate{ID: "4", Name: "Charlotte", Role: models.RoleMember})
	e := &env{state: app.State{Roommates: roommates}}

	tests := []struct {
		ref     string
		wantID  string
		wantErr bool
	}{
		{ref: "2", wantID: "2"},
		{ref: "admin alice", wantID: "1"},
		{ref: "bob", wantID: "2"},
		{ref: "charlotte", wantID: "4"},
		{ref: "char", wantErr: true},
		{ref: "zed", wantErr: true},
		{ref: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			req := require.New(t)
			r, err := e.resolveRoommate(tt.ref)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.wantID, r.ID)
		})
	}
}

func TestParseMonth(t *testing.T) {
	req := require.New(t)
	now := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	y, m, err := parseMonth("", now)
	req.NoError(err)
	req.Equal(2024, y)
	req.Equal(time.March, m)

	y, m, err = parseMonth("2023-11", now)
	req.NoError(err)
	req.Equal(2023, y)
	req.Equal(time.November, m)

	_, _, err = parseMonth("11/2023", now)
	req.Error(err)
}

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	req := require.New(t)
	root := newRootCmd()
	for _, name := range []string{"login", "logout", "whoami", "dashboard", "roommates", "expenses", "budgets", "tasks", "chat", "backup"} {
		cmd, _, err := root.Find([]string{name})
		req.NoError(err)
		req.Equal(name, cmd.Name())
	}
}
