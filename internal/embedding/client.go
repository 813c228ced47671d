package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// ClientConfig describes the inference server the client talks to.
type ClientConfig struct {
	BaseURL           string
	Model             string
	Dimension         int
	MaxSequenceLength int
	BatchSize         int
	MaxWorkers        int
	Timeout           time.Duration
}

// Client embeds text through a sentence-transformers inference server.
// Any transport or protocol failure degrades to the zero vector and is
// logged; callers never see an error.
type Client struct {
	baseURL    string
	model      string
	dim        int
	maxSeqLen  int
	batchSize  int
	maxWorkers int

	httpc  *http.Client
	logger *log.Logger

	ready atomic.Bool
}

func NewClient(cfg ClientConfig, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 32
	}
	maxWorkers := cfg.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		dim:        cfg.Dimension,
		maxSeqLen:  cfg.MaxSequenceLength,
		batchSize:  batchSize,
		maxWorkers: maxWorkers,
		httpc:      &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type embedRequest struct {
	Model      string   `json:"model"`
	Inputs     []string `json:"inputs"`
	TruncateTo int      `json:"truncate_to,omitempty"`
	Normalize  bool     `json:"normalize"`
}

// Warmup embeds a probe text so the first real request does not pay the
// model load cost. The client reports Ready only after a warmup
// delivered a vector of the configured dimension.
func (c *Client) Warmup(ctx context.Context) error {
	vecs, err := c.requestEmbeddings(ctx, []string{"test"})
	if err != nil {
		return err
	}
	if len(vecs) != 1 || len(vecs[0]) != c.dim {
		return fmt.Errorf("warmup returned unexpected shape: %dx%d, want 1x%d", len(vecs), rowLen(vecs), c.dim)
	}
	c.ready.Store(true)
	return nil
}

func (c *Client) Dimension() int {
	return c.dim
}

func (c *Client) Ready(_ context.Context) bool {
	return c != nil && c.ready.Load()
}

func (c *Client) Embed(ctx context.Context, text string) []float64 {
	if strings.TrimSpace(text) == "" {
		return Zero(c.dim)
	}

	vecs, err := c.requestEmbeddings(ctx, []string{text})
	if err != nil {
		c.logger.Printf("[Embedding] embed failed, substituting zero vector: %v", err)
		return Zero(c.dim)
	}
	if len(vecs) != 1 || len(vecs[0]) != c.dim {
		c.logger.Printf("[Embedding] embed returned unexpected shape %dx%d, substituting zero vector", len(vecs), rowLen(vecs))
		return Zero(c.dim)
	}
	c.ready.Store(true)
	return vecs[0]
}

// EmbedBatch chunks the input and embeds chunks concurrently, preserving
// input order. A failed chunk degrades only its own rows to zero.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) [][]float64 {
	out := make([][]float64, len(texts))
	if len(texts) == 0 {
		return out
	}

	type chunk struct {
		start int
		texts []string
	}
	chunks := make([]chunk, 0, (len(texts)+c.batchSize-1)/c.batchSize)
	for start := 0; start < len(texts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		chunks = append(chunks, chunk{start: start, texts: texts[start:end]})
	}

	p := newPool(c.maxWorkers, len(chunks))
	for _, ch := range chunks {
		ch := ch
		p.submit(func(ctx context.Context) {
			c.embedChunk(ctx, ch.texts, out[ch.start:ch.start+len(ch.texts)])
		})
	}
	p.close()
	p.run(ctx)

	// Rows a canceled worker never reached stay nil; zero-fill them so
	// the per-row contract holds.
	for i := range out {
		if out[i] == nil {
			out[i] = Zero(c.dim)
		}
	}
	return out
}

func (c *Client) embedChunk(ctx context.Context, texts []string, dst [][]float64) {
	nonEmpty := make([]string, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}
	if len(nonEmpty) == 0 {
		for i := range dst {
			dst[i] = Zero(c.dim)
		}
		return
	}

	vecs, err := c.requestEmbeddings(ctx, nonEmpty)
	if err != nil || len(vecs) != len(nonEmpty) {
		if err != nil {
			c.logger.Printf("[Embedding] batch of %d failed, substituting zero vectors: %v", len(nonEmpty), err)
		} else {
			c.logger.Printf("[Embedding] batch returned %d rows, want %d, substituting zero vectors", len(vecs), len(nonEmpty))
		}
		for i := range dst {
			dst[i] = Zero(c.dim)
		}
		return
	}

	next := 0
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			dst[i] = Zero(c.dim)
			continue
		}
		v := vecs[next]
		next++
		if len(v) != c.dim {
			dst[i] = Zero(c.dim)
			continue
		}
		dst[i] = v
	}
	c.ready.Store(true)
}

func (c *Client) requestEmbeddings(ctx context.Context, inputs []string) ([][]float64, error) {
	body, err := json.Marshal(embedRequest{
		Model:      c.model,
		Inputs:     inputs,
		TruncateTo: c.maxSeqLen,
		Normalize:  true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embed", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("inference server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var vecs [][]float64
	if err := json.NewDecoder(resp.Body).Decode(&vecs); err != nil {
		return nil, err
	}
	return vecs, nil
}

func rowLen(vecs [][]float64) int {
	if len(vecs) == 0 {
		return 0
	}
	return len(vecs[0])
}
