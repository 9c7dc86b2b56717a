package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/minakianandclaude/LifeTracker/internal/list"
	"github.com/minakianandclaude/LifeTracker/internal/model"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

type mockUseCase struct {
	err error
}

func (m *mockUseCase) List(ctx context.Context) (list.ListListsOutput, error) {
	if m.err != nil {
		return list.ListListsOutput{}, m.err
	}
	return list.ListListsOutput{Lists: []model.List{
		{ID: "00000000-0000-0000-0000-000000000001", Name: "inbox", IsSystem: true, TaskCount: 3},
		{ID: "5b0f5f8e-8d5c-4a1d-9f7a-2d4c6b1e3a10", Name: "grocery list", IsDeletable: true, Position: 1},
	}}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (list.DetailListOutput, error) {
	if m.err != nil {
		return list.DetailListOutput{}, m.err
	}
	l := model.List{ID: id, Name: "inbox", IsSystem: true, TaskCount: 1}
	return list.DetailListOutput{List: l, Tasks: []model.Task{{ID: "t1", Title: "Buy milk", ListID: id, List: l}}}, nil
}

func serve(uc list.UseCase, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestList(t *testing.T) {
	w := serve(&mockUseCase{}, "/api/lists")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data listsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data.Lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(body.Data.Lists))
	}
	if body.Data.Lists[0].DisplayName != "Inbox" || body.Data.Lists[1].DisplayName != "Grocery List" {
		t.Errorf("unexpected display names: %+v", body.Data.Lists)
	}
	if body.Data.Lists[0].TaskCount != 3 {
		t.Errorf("expected task count 3, got %d", body.Data.Lists[0].TaskCount)
	}
}

func TestDetail(t *testing.T) {
	w := serve(&mockUseCase{}, "/api/lists/00000000-0000-0000-0000-000000000001")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data detailResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data.Tasks) != 1 || body.Data.Tasks[0].Title != "Buy milk" {
		t.Errorf("unexpected tasks: %+v", body.Data.Tasks)
	}
}

func TestErrors(t *testing.T) {
	if w := serve(&mockUseCase{err: list.ErrListNotFound}, "/api/lists/x"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if w := serve(&mockUseCase{err: errors.New("db down")}, "/api/lists"); w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
