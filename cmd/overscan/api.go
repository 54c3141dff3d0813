package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mastercactapus/overscan/gcode"
	"github.com/mastercactapus/overscan/overscan"
)

const jobEvents = "/events/jobs"

type api struct {
	http.Handler
	dataDir string
	opt     overscan.Options
	sse     *sse.Server

	cache    *lru.Cache[string, []string]
	upgrader websocket.Upgrader
}

func newAPI(dir string, opt overscan.Options) (*api, error) {
	cache, err := lru.New[string, []string](128)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	a := &api{
		Handler: r,
		dataDir: dir,
		opt:     opt,
		cache:   cache,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	fs := http.FileServer(http.Dir(dir))
	r.PathPrefix("/data/").Handler(http.StripPrefix("/data", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case "GET":
			fs.ServeHTTP(w, req)
		case "PUT":
			a.putFile(w, req)
		case "DELETE":
			a.deleteFile(w, req)
		default:
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})))

	r.HandleFunc("/api/overscan", a.overscanFile).Methods("POST")
	r.HandleFunc("/api/convert", a.convert).Methods("POST")
	r.HandleFunc("/ws", a.serveWS)
	r.PathPrefix("/events/").Handler(a.sse)

	return a, nil
}

// options applies policy, distance and power overrides to the
// server defaults.
func (a *api) options(v url.Values) (overscan.Options, error) {
	opt := a.opt

	var err error
	if s := v.Get("policy"); s != "" {
		opt.Policy, err = overscan.ParsePolicy(s)
		if err != nil {
			return opt, err
		}
	}
	parse := func(param string, val *float64) {
		s := v.Get(param)
		if err != nil || s == "" {
			return
		}
		*val, err = strconv.ParseFloat(s, 64)
	}
	parse("distance", &opt.Distance)
	parse("power", &opt.Power)
	if err != nil {
		return opt, err
	}

	return opt, opt.Validate()
}

// process converts a whole program, reusing earlier results for
// identical input and options.
func (a *api) process(data []byte, opt overscan.Options) ([]string, error) {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%g|%g\n", opt.Policy, opt.Distance, opt.Power)
	h.Write(data)
	key := hex.EncodeToString(h.Sum(nil))

	if lines, ok := a.cache.Get(key); ok {
		return lines, nil
	}
	lines, _, err := overscan.Process(gcode.Lines(string(data)), opt)
	if err != nil {
		return nil, err
	}
	a.cache.Add(key, lines)
	return lines, nil
}

func (a *api) convert(w http.ResponseWriter, req *http.Request) {
	opt, err := a.options(req.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := ioutil.ReadAll(req.Body)
	if err != nil {
		return
	}
	lines, err := a.process(data, opt)
	if err != nil {
		log.Printf("ERROR: convert: %+v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err = io.Copy(w, gcode.NewBuffer(&gcode.LinesReader{Lines: lines}))
	if err != nil {
		log.Println("ERROR: write:", err)
	}
}

func (a *api) overscanFile(w http.ResponseWriter, req *http.Request) {
	err := req.ParseForm()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	opt, err := a.options(req.Form)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file := req.Form.Get("file")
	ok, name := safePath(a.dataDir, file)
	if !ok || file == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	lines, err := readLines(name)
	if os.IsNotExist(err) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("ERROR: read '%s': %+v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	j, err := runJob(lines, opt)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	out := outputPath(name)
	err = writeLines(out, j)
	if err != nil {
		log.Printf("ERROR: write '%s': %+v", out, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	j.Input = file
	j.Output = outputPath(strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+file)), "/"))

	data, err := json.Marshal(j)
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.sse.SendMessage(jobEvents, sse.SimpleMessage(string(data)))

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// serveWS converts every text message into a processed program.
func (a *api) serveWS(w http.ResponseWriter, req *http.Request) {
	opt, err := a.options(req.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ws, err := a.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("ERROR: upgrade:", err)
		return
	}
	defer ws.Close()

	for {
		typ, data, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("ERROR: read:", err)
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		lines, err := a.process(data, opt)
		if err != nil {
			log.Printf("ERROR: convert: %+v", err)
			return
		}
		err = ws.WriteMessage(websocket.TextMessage, []byte(strings.Join(lines, "\n")))
		if err != nil {
			log.Println("ERROR: send:", err)
			return
		}
	}
}

func (a *api) putFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, req.URL.Path)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	os.MkdirAll(filepath.Dir(name), 0755)
	f, err := os.Create(name)
	if err != nil {
		log.Printf("ERROR: create '%s': %+v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	_, err = io.Copy(f, req.Body)
	if err != nil {
		log.Printf("ERROR: write '%s': %+v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
func (a *api) deleteFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, req.URL.Path)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	err := os.Remove(name)
	if os.IsNotExist(err) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("ERROR: delete '%s': %+v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
