// Package httpapi is the HTTP façade over the solver: a thin collaborator
// that loads an instance file, runs Solve, and renders the routes as JSON
// for a visualization frontend. It holds no state beyond its configuration;
// every request is an independent solve.
package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"

	vrptw "github.com/katalvlaran/vrptw-solver"
	"github.com/katalvlaran/vrptw-solver/obslog"
)

// Server wires the gin router to the solver.
type Server struct {
	router  *gin.Engine
	log     *obslog.Logger
	dataDir string
	opts    vrptw.Options
}

// NewServer builds a Server serving instance files from dataDir, solving
// with opts.
func NewServer(dataDir string, opts vrptw.Options, log *obslog.Logger) *Server {
	if log == nil {
		log = obslog.NewLogger(nil)
	}
	s := &Server{
		router:  gin.New(),
		log:     log,
		dataDir: dataDir,
		opts:    opts,
	}
	s.router.Use(gin.Recovery(), s.requestLogger())

	api := s.router.Group("/api")
	{
		api.POST("/solve", s.handleSolve)
		api.GET("/instances", s.handleListInstances)
	}
	return s
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	s.log.Info("http façade listening", "addr", addr, "data_dir", s.dataDir)
	return s.router.Run(addr)
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.LogHTTPRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// errorResponse is the uniform failure body.
func errorResponse(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
