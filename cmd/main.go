package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/OluRemiFour/kendra-backend/internal/config"
	"github.com/OluRemiFour/kendra-backend/internal/handler"
	"github.com/OluRemiFour/kendra-backend/internal/llm"
	"github.com/OluRemiFour/kendra-backend/internal/repository"
	"github.com/OluRemiFour/kendra-backend/internal/service"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(port string, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}

	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		log.Fatalf("cannot create provider: %s", err.Error())
	}
	log.Printf("using %s provider", provider.Name())

	db, err := repository.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Println("cannot open db")
		return
	}
	defer db.Close()

	repository := repository.NewRepository(db)
	service := service.NewService(repository, provider)
	handler := handler.NewHandler(service)
	server := new(Server)

	log.Printf("server started on :%s", cfg.Port)

	go func() {
		if err := server.Run(cfg.Port, handler.InitRoutes()); err != nil {
			log.Fatalf("error while running server: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutdown server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("error while shutdown server: %v", err)
		return
	}

	<-ctx.Done()
	log.Println("server exiting")
}
