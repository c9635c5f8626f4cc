package api

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stellarlinkco/answerbench/internal/config"
	"github.com/stellarlinkco/answerbench/internal/dataset"
	"github.com/stellarlinkco/answerbench/internal/program"
	"github.com/stellarlinkco/answerbench/internal/store"
)

type Server struct {
	router *gin.Engine
	config *config.Config
	ds     *dataset.Dataset
	prog   *program.Program
	pname  string
	store  store.Store
}

func NewServer(cfg *config.Config, ds *dataset.Dataset, prog *program.Program, providerName string, st store.Store) (*Server, error) {
	r := gin.New()
	s := &Server{
		router: r,
		config: cfg,
		ds:     ds,
		prog:   prog,
		pname:  providerName,
		store:  st,
	}
	s.registerMiddleware()
	if err := s.registerRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) Run(addr string) error {
	if s == nil || s.router == nil {
		return errors.New("api: nil server")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = ":8080"
	}
	return s.router.Run(addr)
}
