package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/vela-platform/vela/internal/models"
)

const (
	RUNS_TABLE_NAME = "AnalysisRuns"

	runTTL = 24 * time.Hour
)

// RunStore keeps a short-lived history of analysis runs. Writes are
// best-effort; history must never fail a request.
type RunStore struct {
	client *dynamodb.Client
}

func NewRunStore(client *dynamodb.Client) *RunStore {
	return &RunStore{client: client}
}

// StoreAnalysisRun records one run with a TTL. Errors are logged, not
// returned.
func (s *RunStore) StoreAnalysisRun(ctx context.Context, kind, model string, itemCount int) {
	if s == nil || s.client == nil {
		return
	}

	run := models.AnalysisRun{
		ID:        uuid.NewString(),
		Kind:      kind,
		Model:     model,
		ItemCount: itemCount,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		ExpiresAt: time.Now().Add(runTTL).Unix(),
	}

	item, err := attributevalue.MarshalMap(run)
	if err != nil {
		slog.Error("[DynamoDB] Failed to marshal analysis run",
			slog.String("error", err.Error()))
		return
	}

	backoffDuration := 500 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(RUNS_TABLE_NAME),
			Item:      item,
		})
		if err == nil {
			return
		}
		slog.Warn("[DynamoDB] Retrying analysis run write...",
			slog.Int("retry_attempt", attempt+1),
			slog.String("error", err.Error()))
		time.Sleep(backoffDuration)
		backoffDuration *= 2
	}
	slog.Error("[DynamoDB] Failed to store analysis run after retries",
		slog.String("kind", kind),
		slog.String("error", err.Error()))
}

// ListRecentRuns scans the run history.
func (s *RunStore) ListRecentRuns(ctx context.Context) ([]models.AnalysisRun, error) {
	if s == nil || s.client == nil {
		return []models.AnalysisRun{}, nil
	}

	var runs []models.AnalysisRun
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(RUNS_TABLE_NAME),
	})

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for analysis runs failed: %w", err)
		}

		var page []models.AnalysisRun
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("[DynamoDB] Failed to unmarshal analysis runs: %w", err)
		}
		runs = append(runs, page...)
	}

	if runs == nil {
		runs = []models.AnalysisRun{}
	}
	return runs, nil
}
