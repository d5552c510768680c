package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/tabtools/tabconv/config"
	"github.com/tabtools/tabconv/model"
	"github.com/tabtools/tabconv/tab"
	"github.com/tabtools/tabconv/tuning"
)

var serveConfigPath string
var serveAddr string

var serveCfg config.Config
var serveTarget tuning.Tuning

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "config file with target tuning (required)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve tab merging over HTTP",
	Long:  `Starts an HTTP server that merges POSTed tab texts into the target tuning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, target, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		ConfigureServe(cfg, target)
		return serve()
	},
}

// ConfigureServe installs the target config the handlers convert against.
// Split out so tests can configure without a config file.
func ConfigureServe(cfg config.Config, target tuning.Tuning) {
	serveCfg = cfg
	serveTarget = target
}

// requestConfig layers any request-supplied overrides onto the server's
// config and revalidates, the same way config files layer onto defaults.
func requestConfig(overrides json.RawMessage) (config.Config, tuning.Tuning, error) {
	if len(overrides) == 0 {
		return serveCfg, serveTarget, nil
	}
	cfg := serveCfg
	if err := json.Unmarshal(overrides, &cfg); err != nil {
		return config.Config{}, nil, fmt.Errorf("could not parse config overrides: %v", err)
	}
	return config.Resolve(cfg)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleConvert(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.ConvertRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}
	if len(input.Tabs) == 0 {
		writeError(w, 400, "need at least one tab")
		return
	}
	if len(input.PartOverrides) > len(input.Tabs) {
		writeError(w, 400, "more part_overrides than tabs")
		return
	}

	requestId := uuid.New().String()

	overrides, err := parsePartOverrides(input.PartOverrides, len(input.Tabs))
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	cfg, target, err := requestConfig(input.Config)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	files := make([]*tab.File, len(input.Tabs))
	for i, text := range input.Tabs {
		files[i] = tab.Parse(fmt.Sprintf("tab %v", i), text)
	}

	summary, err := tab.Merge(files, overrides, cfg, target)
	if err != nil {
		writeError(w, 422, err.Error())
		return
	}

	var merged string
	for _, line := range summary.Lines {
		merged += line + "\n"
	}
	json.NewEncoder(w).Encode(model.ConvertResponse{
		RequestId:  requestId,
		Tab:        merged,
		Unplayable: summary.Unplayable,
	})
}

func serve() error {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Printf("Listening on %v", serveAddr)
	return http.ListenAndServe(serveAddr, handler)
}
