package coach

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"strings"
	"time"

	"github.com/2beens/gymsplit/internal/logstore"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	kindAsk    = "ask"
	kindReport = "report"

	reportCacheTTL = time.Hour
)

// Coach answers questions about the plan and writes progress reports.
// It never returns an error: failures become fixed user-facing messages.
type Coach struct {
	generator      Generator
	reportCache    *freecache.Cache
	metricsManager *metrics.Manager
}

// NewCoach creates a Coach. A nil generator means no API key was
// configured; every call then answers with MsgMissingAPIKey.
func NewCoach(generator Generator, reportCacheSizeMB int, metricsManager *metrics.Manager) *Coach {
	return &Coach{
		generator:      generator,
		reportCache:    freecache.NewCache(reportCacheSizeMB * 1024 * 1024),
		metricsManager: metricsManager,
	}
}

func (c *Coach) Ask(ctx context.Context, query, planContext string) string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.ask")
	defer span.End()

	return c.generate(ctx, kindAsk, askSystemInstruction, askPrompt(query, planContext))
}

// WeeklyReport writes a narrative report over the history. Reports are
// cached per distinct history for an hour.
func (c *Coach) WeeklyReport(ctx context.Context, entries []logstore.HistoryEntry) string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.report")
	defer span.End()

	if len(entries) == 0 {
		c.metricsManager.CounterCoachCalls.WithLabelValues(kindReport, "no_data").Inc()
		return MsgNoHistory
	}

	key := historyKey(entries)
	if cached, err := c.reportCache.Get(key); err == nil {
		c.metricsManager.CounterCoachCalls.WithLabelValues(kindReport, "cached").Inc()
		return string(cached)
	}

	report, ok := c.tryGenerate(ctx, kindReport, reportSystemInstruction, reportPrompt(entries))
	if !ok {
		return report
	}

	if err := c.reportCache.Set(key, []byte(report), int(reportCacheTTL.Seconds())); err != nil {
		log.Warnf("coach: cache report: %s", err)
	}
	return report
}

func (c *Coach) generate(ctx context.Context, kind, systemInstruction, prompt string) string {
	answer, _ := c.tryGenerate(ctx, kind, systemInstruction, prompt)
	return answer
}

// tryGenerate returns the answer, or a fallback message and false.
func (c *Coach) tryGenerate(ctx context.Context, kind, systemInstruction, prompt string) (string, bool) {
	if c.generator == nil {
		c.metricsManager.CounterCoachCalls.WithLabelValues(kind, "no_key").Inc()
		return MsgMissingAPIKey, false
	}

	answer, err := c.generator.Generate(ctx, systemInstruction, prompt)
	if err != nil {
		log.Errorf("coach %s: generate: %s", kind, err)
		c.metricsManager.CounterCoachCalls.WithLabelValues(kind, "error").Inc()
		return MsgServiceUnavailable, false
	}
	if strings.TrimSpace(answer) == "" {
		c.metricsManager.CounterCoachCalls.WithLabelValues(kind, "empty").Inc()
		return MsgCannotAnswer, false
	}

	c.metricsManager.CounterCoachCalls.WithLabelValues(kind, "ok").Inc()
	return answer, true
}

func historyKey(entries []logstore.HistoryEntry) []byte {
	// HistoryEntry is plain data, Marshal cannot fail
	raw, _ := json.Marshal(entries)
	sum := sha256.Sum256(raw)
	return sum[:]
}
