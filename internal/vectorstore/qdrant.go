package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"coursepilot/internal/contextutil"
	"coursepilot/internal/domain"
	"coursepilot/internal/service"
)

// QdrantIndex stores per-video title embeddings in a Qdrant collection, with
// course and video ids in the payload. It implements service.EmbeddingIndex.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantIndex creates a Qdrant-backed embedding index.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port (typically 6334) is derived from the HTTP port.
func NewQdrantIndex(urlStr, collection string) (*QdrantIndex, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	port := 6334
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			// gRPC port is typically HTTP port + 1
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantIndex{client: client, collection: collection}, nil
}

// EnsureCollection creates the collection with cosine distance when it does
// not exist, and validates the vector size when it does.
func (s *QdrantIndex) EnsureCollection(ctx context.Context, vectorSize int) error {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}

	if !exists {
		logger.InfoContext(ctx, "creating collection", "collection", s.collection, "vector_size", vectorSize)
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: s.collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(vectorSize),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
		return nil
	}

	info, err := s.client.GetCollectionInfo(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to get collection info: %w", err)
	}
	config := info.Config
	if config == nil || config.Params == nil {
		return fmt.Errorf("collection config is invalid")
	}
	vectorsConfig := config.Params.GetVectorsConfig()
	if vectorsConfig == nil {
		return fmt.Errorf("collection vectors config is invalid")
	}
	params := vectorsConfig.GetParams()
	if params == nil {
		return fmt.Errorf("collection vector params are invalid")
	}
	if int(params.Size) != vectorSize {
		return fmt.Errorf("collection vector size mismatch: expected %d, got %d", vectorSize, params.Size)
	}
	return nil
}

// Upsert writes the video's title embedding, keyed by the video id.
func (s *QdrantIndex) Upsert(ctx context.Context, videoID, courseID string, vec domain.Embedding) error {
	logger := contextutil.LoggerFromContext(ctx)

	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(videoID),
		Vectors: qdrant.NewVectors(vec...),
		Payload: qdrant.NewValueMap(map[string]any{
			"video_id":  videoID,
			"course_id": courseID,
		}),
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to upsert embedding", "video_id", videoID, "error", err)
		return fmt.Errorf("failed to upsert embedding: %w", err)
	}
	return nil
}

// Search returns the k nearest video embeddings.
func (s *QdrantIndex) Search(ctx context.Context, query domain.Embedding, k int) ([]service.EmbeddingHit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be greater than 0")
	}

	limit := uint64(k)
	scoredPoints, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(query...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search embeddings: %w", err)
	}

	hits := make([]service.EmbeddingHit, 0, len(scoredPoints))
	for _, point := range scoredPoints {
		hit := service.EmbeddingHit{Score: point.Score}
		if point.Id != nil {
			hit.VideoID = point.Id.GetUuid()
		}
		if point.Payload != nil {
			if v, ok := point.Payload["video_id"]; ok && v.GetStringValue() != "" {
				hit.VideoID = v.GetStringValue()
			}
			if v, ok := point.Payload["course_id"]; ok {
				hit.CourseID = v.GetStringValue()
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Delete removes the videos' embeddings; absent ids are ignored.
func (s *QdrantIndex) Delete(ctx context.Context, videoIDs []string) error {
	if len(videoIDs) == 0 {
		return nil
	}

	ids := make([]*qdrant.PointId, 0, len(videoIDs))
	for _, id := range videoIDs {
		ids = append(ids, qdrant.NewID(id))
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collection,
		Points:         qdrant.NewPointsSelector(ids...),
	})
	if err != nil {
		return fmt.Errorf("failed to delete embeddings: %w", err)
	}
	return nil
}
