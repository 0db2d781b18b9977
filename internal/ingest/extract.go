package ingest

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nvoss/ccdash/internal/models"
	"github.com/nvoss/ccdash/internal/pricing"
)

// rawRecord mirrors one line of a Claude Code transcript. Nested
// pointers distinguish an absent message/usage block from a zero one;
// only records carrying a usage block become entries.
type rawRecord struct {
	Timestamp string      `json:"timestamp"`
	SessionID string      `json:"sessionId"`
	RequestID string      `json:"requestId"`
	CWD       string      `json:"cwd"`
	CostUSD   *float64    `json:"costUSD"`
	Message   *rawMessage `json:"message"`
}

type rawMessage struct {
	ID    string    `json:"id"`
	Model string    `json:"model"`
	Usage *rawUsage `json:"usage"`
}

type rawUsage struct {
	InputTokens              int64 `json:"input_tokens"`
	OutputTokens             int64 `json:"output_tokens"`
	CacheCreationInputTokens int64 `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int64 `json:"cache_read_input_tokens"`
}

// DedupSet records (message id, request id) pairs already turned into
// entries. One set is shared across every file of a single run and never
// outlives it; it is threaded explicitly so repeated runs cannot leak
// state into each other.
type DedupSet map[string]struct{}

// NewDedupSet returns an empty dedup set for one ingestion run.
func NewDedupSet() DedupSet {
	return make(DedupSet)
}

func dedupKey(rec *rawRecord) string {
	if rec.Message == nil || rec.Message.ID == "" || rec.RequestID == "" {
		return ""
	}
	return rec.Message.ID + ":" + rec.RequestID
}

// ExtractFile parses one transcript file into usage entries. The
// fallback session id is the file's containing directory name; the
// project path is the first working directory seen in the file, or the
// encoded project folder name if no record carries one. Malformed lines
// are skipped silently.
func ExtractFile(file LogFile, seen DedupSet) ([]models.UsageEntry, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fallbackSession := filepath.Base(filepath.Dir(file.Path))

	var entries []models.UsageEntry
	projectPath := ""

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec rawRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}

		// The first record carrying a working directory fixes the
		// project path for the rest of the file.
		if projectPath == "" && rec.CWD != "" {
			projectPath = rec.CWD
		}

		if rec.Message == nil || rec.Message.Usage == nil {
			continue
		}

		if key := dedupKey(&rec); key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}

		usage := rec.Message.Usage
		if usage.InputTokens == 0 && usage.OutputTokens == 0 &&
			usage.CacheCreationInputTokens == 0 && usage.CacheReadInputTokens == 0 {
			continue
		}

		model := rec.Message.Model
		if model == "" {
			model = "unknown"
		}

		sessionID := rec.SessionID
		if sessionID == "" {
			sessionID = fallbackSession
		}

		project := projectPath
		if project == "" {
			project = file.ProjectName
		}

		entries = append(entries, models.UsageEntry{
			Timestamp:           rec.Timestamp,
			Model:               model,
			SessionID:           sessionID,
			ProjectPath:         project,
			InputTokens:         usage.InputTokens,
			OutputTokens:        usage.OutputTokens,
			CacheCreationTokens: usage.CacheCreationInputTokens,
			CacheReadTokens:     usage.CacheReadInputTokens,
			Cost:                entryCost(&rec, usage, model),
		})
	}

	return entries, scanner.Err()
}

// entryCost prefers the record's precomputed cost; otherwise it is
// derived from the pricing table. Models missing from the table yield
// zero cost rather than an error.
func entryCost(rec *rawRecord, usage *rawUsage, model string) float64 {
	if rec.CostUSD != nil {
		return *rec.CostUSD
	}
	tier, ok := pricing.Resolve(model)
	if !ok {
		return 0
	}
	return tier.Cost(usage.InputTokens, usage.OutputTokens,
		usage.CacheCreationInputTokens, usage.CacheReadInputTokens)
}
