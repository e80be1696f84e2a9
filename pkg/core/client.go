package core

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"

	"github.com/sigmind/sigmem-go/pkg/consolidation"
	"github.com/sigmind/sigmem-go/pkg/learning"
	"github.com/sigmind/sigmem-go/pkg/sigel"
	"github.com/sigmind/sigmem-go/pkg/storage"
	fileStore "github.com/sigmind/sigmem-go/pkg/storage/file"
	mysqlStore "github.com/sigmind/sigmem-go/pkg/storage/mysql"
	postgresStore "github.com/sigmind/sigmem-go/pkg/storage/postgres"
	sqliteStore "github.com/sigmind/sigmem-go/pkg/storage/sqlite"
	"github.com/sigmind/sigmem-go/pkg/summarizer"
)

// DefaultSourceTag labels ingested records when no tag is supplied.
const DefaultSourceTag = "text_ingestion"

// interactionContext tags records created by RecordInteraction.
const interactionContext = "user_interaction"

// consolidatedContext tags synthetic records created by consolidation.
const consolidatedContext = "consolidated_memory"

// entity pairs a sigel with its access lock. Ingestion, consolidation, and
// persistence take the write lock; prediction takes the read lock, so a
// consolidation pass never overlaps any other call on the same entity.
type entity struct {
	mu sync.RWMutex
	sg *sigel.Sigel

	// lastConsolidated caches the most recent pass's output for optional
	// summary refinement. Transient; never persisted.
	lastConsolidated []consolidation.ConsolidatedMemory
}

// Client is the main sigmem client.
//
// It owns a set of named sigels and exposes the subsystem's external calls
// (Ingest, PredictNext, Consolidate) plus snapshot persistence and optional
// LLM summary refinement. The client is safe for concurrent use; access is
// serialized per entity, not globally.
//
// Example usage:
//
//	config := core.DefaultConfig()
//	client, _ := core.NewClient(config)
//	defer client.Close()
//
//	_ = client.Ingest("athena", "the cat sat on the mat.")
//	next := client.PredictNext("athena", []string{"the", "cat", "sat"})
//	report, _ := client.Consolidate("athena")
type Client struct {
	cfg          *Config
	logger       zerolog.Logger
	node         *snowflake.Node
	learner      *learning.Learner
	consolidator *consolidation.Consolidator
	store        storage.SnapshotStore
	summarizer   summarizer.Summarizer

	mu       sync.Mutex
	entities map[string]*entity
}

// NewClient creates a new sigmem client.
//
// The learner's RNG is seeded from cfg.Seed (time-based when zero), the
// snapshot store is initialized per cfg.Storage, and the OpenAI summarizer
// is enabled when an API key is configured (heuristic otherwise).
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()

	nodeID := cfg.NodeID
	if nodeID == 0 {
		nodeID = 1
	}
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, NewMemoryError("NewClient", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Client{
		cfg:    cfg,
		logger: logger,
		node:   node,
		consolidator: consolidation.NewConsolidator(&consolidation.Config{
			DecayRate:          cfg.Consolidation.DecayRate,
			RetentionThreshold: cfg.Consolidation.RetentionThreshold,
		}, logger),
		entities: make(map[string]*entity),
	}
	c.learner = learning.NewLearner(
		&learning.Config{NextID: func() int64 { return c.node.Generate().Int64() }},
		rand.New(rand.NewSource(seed)),
	)

	if c.store, err = initStorage(&cfg.Storage, logger); err != nil {
		return nil, err
	}

	if cfg.OpenAI.APIKey != "" {
		c.summarizer = summarizer.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	} else {
		c.summarizer = summarizer.NewHeuristic()
	}

	return c, nil
}

// SetLogger replaces the client's logger (default is a no-op logger).
func (c *Client) SetLogger(logger zerolog.Logger) {
	c.logger = logger
	c.consolidator = consolidation.NewConsolidator(&consolidation.Config{
		DecayRate:          c.cfg.Consolidation.DecayRate,
		RetentionThreshold: c.cfg.Consolidation.RetentionThreshold,
	}, logger)
}

// initStorage builds the snapshot store for the configured provider.
func initStorage(cfg *StorageConfig, logger zerolog.Logger) (storage.SnapshotStore, error) {
	switch cfg.Provider {
	case ProviderNone:
		return nil, nil
	case ProviderFile:
		return fileStore.NewStore(cfg.Path, logger)
	case ProviderSQLite:
		return sqliteStore.NewStore(&sqliteStore.Config{DBPath: cfg.Path, TableName: cfg.TableName}, logger)
	case ProviderPostgres:
		return postgresStore.NewStore(&postgresStore.Config{DSN: cfg.DSN, TableName: cfg.TableName}, logger)
	case ProviderMySQL:
		return mysqlStore.NewStore(&mysqlStore.Config{DSN: cfg.DSN, TableName: cfg.TableName}, logger)
	default:
		return nil, ErrInvalidConfig
	}
}

// Create creates (or returns) the named sigel.
func (c *Client) Create(name string) *sigel.Sigel {
	return c.getOrCreate(name).sg
}

// Get returns the named sigel and whether it exists.
func (c *Client) Get(name string) (*sigel.Sigel, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entities[name]
	if !ok {
		return nil, false
	}
	return e.sg, true
}

func (c *Client) getOrCreate(name string) *entity {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entities[name]
	if !ok {
		sg := sigel.New(c.node.Generate().Int64(), name)
		if c.cfg.Learning.LearningRate > 0 {
			sg.Learning.LearningRate = c.cfg.Learning.LearningRate
		}
		e = &entity{sg: sg}
		c.entities[name] = e
	}
	return e
}

func (c *Client) lookup(name string) (*entity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entities[name]
	return e, ok
}

// Ingest absorbs free text into the named sigel, creating it if needed.
//
// Not idempotent: repeated calls keep adding memories and reinforcement.
// Callers chunk large corpora before ingesting; a call runs to completion
// with no internal cancellation.
func (c *Client) Ingest(name, text string, opts ...IngestOption) error {
	options := &IngestOptions{SourceTag: DefaultSourceTag}
	for _, opt := range opts {
		opt(options)
	}

	e := c.getOrCreate(name)
	e.mu.Lock()
	defer e.mu.Unlock()

	c.learner.Ingest(e.sg, text, options.SourceTag)
	return nil
}

// RecordInteraction learns from one exchange with the entity: the exchange
// becomes an episodic record and nudges awareness depth.
func (c *Client) RecordInteraction(name, input, response string) error {
	e := c.getOrCreate(name)
	e.mu.Lock()
	defer e.mu.Unlock()

	content := "Interaction: " + input + " | Response: " + response
	e.sg.AddMemory(c.node.Generate().Int64(), content, interactionContext, learning.EmotionalWeight(input))

	e.sg.AwarenessDepth += 0.001
	if e.sg.AwarenessDepth > 1.0 {
		e.sg.AwarenessDepth = 1.0
	}
	return nil
}

// PredictNext predicts the token following a 3-token context.
//
// Read-only and infallible: an unknown sigel or a total miss returns the
// "unknown" sentinel.
func (c *Client) PredictNext(name string, context []string) string {
	e, ok := c.lookup(name)
	if !ok {
		return learning.UnknownToken
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return c.learner.PredictNext(e.sg, context)
}

// Consolidate runs one consolidation pass over the named sigel: score,
// cluster, compress, retain, reinforce, decay, prune, and semantic
// maintenance. The only call that compacts memory.
func (c *Client) Consolidate(name string, opts ...ConsolidateOption) (*consolidation.Report, error) {
	options := &ConsolidateOptions{}
	for _, opt := range opts {
		opt(options)
	}

	e, ok := c.lookup(name)
	if !ok {
		return nil, NewMemoryError("Consolidate", ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := options.Now
	if now.IsZero() {
		now = time.Now()
	}
	resonance := e.sg.ContextualAlignment
	if options.Resonance != nil {
		resonance = *options.Resonance
	}

	report, consolidated := c.consolidator.Consolidate(e.sg, now, resonance, func() int64 {
		return c.node.Generate().Int64()
	})
	e.lastConsolidated = consolidated
	return &report, nil
}

// RefineSummaries rewrites the summaries produced by the most recent
// consolidation pass through the configured summarizer, and returns how
// many records were updated.
//
// This is the only call that may perform network I/O (when the OpenAI
// summarizer is configured); it is deliberately separate from Consolidate.
// Per-cluster failures fall back to the existing heuristic summary.
func (c *Client) RefineSummaries(ctx context.Context, name string) (int, error) {
	e, ok := c.lookup(name)
	if !ok {
		return 0, NewMemoryError("RefineSummaries", ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	refined := 0
	for i := range e.lastConsolidated {
		cm := &e.lastConsolidated[i]
		topic := topicFromKeyPatterns(cm.KeyPatterns)

		summary, err := c.summarizer.SummarizeCluster(ctx, topic, cm.OriginalMemberCount, cm.MemberExcerpts)
		if err != nil {
			c.logger.Warn().Err(err).Str("sigel", name).Str("topic", topic).
				Msg("summary refinement failed, keeping heuristic summary")
			continue
		}
		if summary == "" || summary == cm.Summary {
			continue
		}

		for j := range e.sg.Episodic {
			m := &e.sg.Episodic[j]
			if m.ID == cm.ID && m.Context == consolidatedContext {
				m.Content = summary
				cm.Summary = summary
				refined++
				break
			}
		}
	}
	return refined, nil
}

// topicFromKeyPatterns recovers the cluster topic from its key patterns.
func topicFromKeyPatterns(patterns []string) string {
	for _, p := range patterns {
		if strings.HasPrefix(p, "topic:") {
			return strings.TrimPrefix(p, "topic:")
		}
	}
	return "general"
}

// Schedule suggests when the caller's scheduler should run the next passes.
func (c *Client) Schedule() consolidation.Schedule {
	return consolidation.DefaultSchedule(time.Now())
}

// Save persists the named sigel to the configured snapshot store.
func (c *Client) Save(ctx context.Context, name string) error {
	if c.store == nil {
		return NewMemoryError("Save", ErrNoSnapshotStore)
	}
	e, ok := c.lookup(name)
	if !ok {
		return NewMemoryError("Save", ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := c.store.Save(ctx, e.sg); err != nil {
		return NewMemoryError("Save", err)
	}
	return nil
}

// Load restores the named sigel from the configured snapshot store,
// replacing any in-memory copy.
func (c *Client) Load(ctx context.Context, name string) error {
	if c.store == nil {
		return NewMemoryError("Load", ErrNoSnapshotStore)
	}

	sg, err := c.store.Load(ctx, name)
	if err != nil {
		return NewMemoryError("Load", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entities[name] = &entity{sg: sg}
	return nil
}

// Close releases the snapshot store's resources.
func (c *Client) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}
