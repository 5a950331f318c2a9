package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/golife/bollywood"
	"github.com/lguibr/golife/server"
	"github.com/lguibr/golife/utils"
	"golang.org/x/net/websocket"
)

func main() {
	cfg := utils.DefaultConfig()
	engine := bollywood.NewEngine()

	srv := server.NewServer(engine, cfg)
	if err := srv.Start(); err != nil {
		panic(err)
	}

	http.HandleFunc("/", srv.HandleGetBoard())
	http.Handle("/subscribe", websocket.Handler(srv.HandleSubscribe()))

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			srv.Stop(fmt.Sprintf("signal %s", sig))
		case <-srv.Fatal():
			srv.Stop("board restart budget exhausted")
		}
		engine.Shutdown(5 * time.Second)
		os.Exit(0)
	}()

	fmt.Printf("Life board (%dx%d, tick %s) listening on %s\n",
		cfg.GridSize, cfg.GridSize, cfg.TickPeriod, cfg.ServerAddr)

	panic(http.ListenAndServe(cfg.ServerAddr, nil))
}
