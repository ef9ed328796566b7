package service

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmynk/roomiesync/internal/mocks"
	"github.com/mmynk/roomiesync/internal/storage"
)

func TestRepositoryErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		expect func(repo *mocks.MockRepository)
		method string
		path   string
		body   any
		want   int
	}{
		{
			name: "unknown roommate session",
			expect: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetRoommate(gomock.Any(), "9").Return(nil, fmt.Errorf("roommate 9: %w", storage.ErrNotFound))
			},
			method: http.MethodPost,
			path:   "/api/session",
			body:   SessionRequest{RoommateID: "9"},
			want:   http.StatusNotFound,
		},
		{
			name: "listing fails",
			expect: func(repo *mocks.MockRepository) {
				repo.EXPECT().ListExpenses(gomock.Any()).Return(nil, errors.New("disk full"))
			},
			method: http.MethodGet,
			path:   "/api/expenses",
			want:   http.StatusInternalServerError,
		},
		{
			name: "task status of missing task",
			expect: func(repo *mocks.MockRepository) {
				repo.EXPECT().UpdateTaskStatus(gomock.Any(), "t1", gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)
			},
			method: http.MethodPut,
			path:   "/api/tasks/t1",
			body:   map[string]string{"status": "COMPLETED"},
			want:   http.StatusNotFound,
		},
		{
			name:   "invalid session body never reaches storage",
			expect: func(*mocks.MockRepository) {},
			method: http.MethodPost,
			path:   "/api/session",
			body:   SessionRequest{},
			want:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)
			tt.expect(repo)

			server := httptest.NewServer(NewHandler(repo, Options{}))
			t.Cleanup(server.Close)

			resp := do(t, tt.method, server.URL+tt.path, "", tt.body)
			req.Equal(tt.want, resp.StatusCode)
			req.NotEmpty(decodeBody[map[string]string](t, resp)["error"])
		})
	}
}
