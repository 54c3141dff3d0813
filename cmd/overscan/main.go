package main

import (
	"flag"
	"log"
	"net/http"
	"os"
)

func main() {
	log.SetFlags(log.Lshortfile)

	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Addr != "" {
		serve(cfg)
		return
	}

	lines, err := readLines(cfg.Input)
	if err != nil {
		log.Fatal(err)
	}

	j, err := runJob(lines, cfg.Options)
	if err != nil {
		log.Fatal(err)
	}

	out := cfg.Output
	if out == "" {
		out = outputPath(cfg.Input)
	}
	err = writeLines(out, j)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s (%s): %d groups, %d with overscan, %d lines added, %d dropped",
		out, j.Policy, j.Stats.Groups, j.Stats.Overscans, j.Stats.Inserted, j.Stats.Dropped)

	if cfg.Stats {
		log.Printf("input:  %+v", j.Before)
		log.Printf("output: %+v", j.After)
	}
	if cfg.Dump {
		err = dumpMoves(j.lines)
		if err != nil {
			log.Printf("ERROR: dump: %+v", err)
		}
	}
}

func serve(cfg *Config) {
	a, err := newAPI(cfg.DataDir, cfg.Options)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Listening on", cfg.Addr)
	err = http.ListenAndServe(cfg.Addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		a.ServeHTTP(w, req)
	}))
	if err != nil {
		log.Fatal(err)
	}
}
