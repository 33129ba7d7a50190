package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/agenthands/termgraph/internal/config"
	"github.com/agenthands/termgraph/internal/core"
	"github.com/agenthands/termgraph/internal/core/cluster"
	"github.com/agenthands/termgraph/internal/core/graph"
	"github.com/agenthands/termgraph/internal/core/links"
	"github.com/agenthands/termgraph/internal/core/semantic"
	"github.com/agenthands/termgraph/internal/driver"
	"github.com/agenthands/termgraph/internal/glossary"
	"github.com/agenthands/termgraph/internal/tracking"
)

type Server struct {
	Config *config.Config
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}

	// Env overrides for the graph store connection.
	if uri := os.Getenv("MEMGRAPH_URI"); uri != "" {
		cfg.Memgraph.URI = uri
	}
	if user := os.Getenv("MEMGRAPH_USER"); user != "" {
		cfg.Memgraph.User = user
	}
	if pass := os.Getenv("MEMGRAPH_PASSWORD"); pass != "" {
		cfg.Memgraph.Password = pass
	}

	return &Server{Config: cfg}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.POST("/links", s.ExtractLinks)
	r.POST("/analyze", s.Analyze)
	r.POST("/publish", s.Publish)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type AnalyzeRequest struct {
	// Glossary carries either input shape: a term->definition map or a list
	// of entry objects.
	Glossary  json.RawMessage `json:"glossary"`
	Algorithm string          `json:"algorithm,omitempty"`
	K         int             `json:"k,omitempty"`
	Seed      *int64          `json:"seed,omitempty"`
}

func (s *Server) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	g, err := glossary.ParseJSON(req.Glossary)
	if err != nil {
		s.glossaryError(c, err)
		return
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = s.Config.Pipeline.Algorithm
	}
	detector, err := cluster.NewDetector(algorithm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	k := req.K
	if k == 0 {
		k = s.Config.Pipeline.K
	}
	seed := s.Config.Pipeline.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}
	if seed == 0 {
		seed = semantic.DefaultSeed
	}

	pipeline := core.NewPipeline(
		links.NewExtractor(s.Config.Synonyms),
		detector,
		semantic.NewClusterer(k, seed),
		tracking.NewNopTracker(),
	)

	result, err := pipeline.Run(g)
	if err != nil {
		log.Printf("Failed to run pipeline: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze glossary"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type LinksRequest struct {
	Glossary json.RawMessage `json:"glossary"`
}

func (s *Server) ExtractLinks(c *gin.Context) {
	var req LinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	g, err := glossary.ParseJSON(req.Glossary)
	if err != nil {
		s.glossaryError(c, err)
		return
	}

	dict := links.NewExtractor(s.Config.Synonyms).Extract(g)
	c.JSON(http.StatusOK, gin.H{"links": dict})
}

// Publish runs the pipeline and writes the term graph with both cluster
// labelings to the configured graph store.
func (s *Server) Publish(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	g, err := glossary.ParseJSON(req.Glossary)
	if err != nil {
		s.glossaryError(c, err)
		return
	}

	detector, err := cluster.NewDetector(s.Config.Pipeline.Algorithm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := s.Config.Pipeline.Seed
	if seed == 0 {
		seed = semantic.DefaultSeed
	}
	pipeline := core.NewPipeline(
		links.NewExtractor(s.Config.Synonyms),
		detector,
		semantic.NewClusterer(s.Config.Pipeline.K, seed),
		tracking.NewNopTracker(),
	)
	result, err := pipeline.Run(g)
	if err != nil {
		log.Printf("Failed to run pipeline: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze glossary"})
		return
	}

	d, err := driver.NewMemgraphDriver(s.Config.Memgraph.URI, s.Config.Memgraph.User, s.Config.Memgraph.Password)
	if err != nil {
		log.Printf("Failed to connect to graph store: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to connect to graph store"})
		return
	}
	ctx := c.Request.Context()
	defer d.Close(ctx)

	tg := graph.Build(g.Terms(), result.Links)
	runID, err := core.PublishGraph(ctx, d, g, tg, result.Structural, result.Semantic)
	if err != nil {
		log.Printf("Failed to publish graph: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish graph"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id": runID,
		"nodes":  tg.NodeCount(),
		"edges":  tg.EdgeCount(),
	})
}

// glossaryError maps glossary validation failures onto 422 with the full
// violation list; anything else is a plain bad request.
func (s *Server) glossaryError(c *gin.Context, err error) {
	var malformed *glossary.MalformedGlossaryError
	if errors.As(err, &malformed) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "Malformed glossary",
			"violations": malformed.Violations,
		})
		return
	}
	if errors.Is(err, glossary.ErrUnsupportedShape) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid glossary"})
}
