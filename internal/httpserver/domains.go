package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	listHTTP "github.com/minakianandclaude/LifeTracker/internal/list/delivery/http"
	listRepo "github.com/minakianandclaude/LifeTracker/internal/list/repository/postgre"
	listUC "github.com/minakianandclaude/LifeTracker/internal/list/usecase"
	taskHTTP "github.com/minakianandclaude/LifeTracker/internal/task/delivery/http"
	taskRepo "github.com/minakianandclaude/LifeTracker/internal/task/repository/postgre"
	taskUC "github.com/minakianandclaude/LifeTracker/internal/task/usecase"
	voiceHTTP "github.com/minakianandclaude/LifeTracker/internal/voice/delivery/http"
	"github.com/minakianandclaude/LifeTracker/internal/voice/parser"
	voiceUC "github.com/minakianandclaude/LifeTracker/internal/voice/usecase"
)

// setupDomains wires repository -> usecase -> handler for each domain and registers its routes.
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup) error {
	// Repositories
	lists := listRepo.New(srv.postgresDB, srv.l)
	tasks := taskRepo.New(srv.postgresDB, srv.l)

	// Tasks: /api/tasks
	taskUsecase := taskUC.New(srv.l, tasks, lists)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, taskUsecase))

	// Lists: /api/lists
	listUsecase := listUC.New(lists, tasks, srv.l)
	listHTTP.RegisterRoutes(api, listHTTP.New(srv.l, listUsecase))

	// Voice: /api/voice, /api/voice/health
	voiceParser := parser.New(srv.l, srv.llm, srv.parserCfg)
	voiceUsecase := voiceUC.New(srv.l, voiceParser, taskUsecase)
	voiceHTTP.RegisterRoutes(api, voiceHTTP.New(srv.l, voiceUsecase))

	srv.l.Infof(ctx, "Domains registered: tasks, lists, voice (model %s)", srv.llm.Model())
	return nil
}
