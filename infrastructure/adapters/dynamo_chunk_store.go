package adapters

import (
	"context"
	"sort"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/config"
	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

type dynamoChunkItem struct {
	DocumentId  string `dynamodbav:"document_id"`
	ChunkId     string `dynamodbav:"chunk_id"`
	SectionType string `dynamodbav:"section_type"`
	Heading     string `dynamodbav:"heading"`
	Content     string `dynamodbav:"content"`
	ChunkOrder  int    `dynamodbav:"chunk_order"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// dynamoChunkStore keys chunks by document_id (partition) and chunk_id
// (sort), so one query returns all chunks of a document.
type dynamoChunkStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoChunkStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.ChunkStorePort {
	return &dynamoChunkStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoChunkStore) CreateBatch(ctx context.Context, chunks []domain.Chunk) error {
	for _, chunk := range chunks {
		item := dynamoChunkItem{
			DocumentId:  chunk.DocumentID,
			ChunkId:     chunk.ID,
			SectionType: string(chunk.SectionType),
			Heading:     chunk.Heading,
			Content:     chunk.Content,
			ChunkOrder:  chunk.ChunkOrder,
			CreatedAt:   chunk.CreatedAt.Format(time.RFC3339Nano),
		}
		av, err := dynamodbattribute.MarshalMap(item)
		if err != nil {
			s.logger.ErrorWithFields(err, "Failed to marshal chunk item", map[string]interface{}{
				"document_id": chunk.DocumentID,
				"chunk_id":    chunk.ID,
			})
			return err
		}

		input := &dynamodb.PutItemInput{
			Item:      av,
			TableName: aws.String(s.dynamoConfig.ChunksTable),
		}
		if _, err = s.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
			s.logger.ErrorWithFields(err, "Failed to save chunk item", map[string]interface{}{
				"document_id": chunk.DocumentID,
				"chunk_id":    chunk.ID,
			})
			return err
		}
	}

	return nil
}

func (s *dynamoChunkStore) ListByDocumentID(ctx context.Context, documentID string) ([]domain.Chunk, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.dynamoConfig.ChunksTable),
		KeyConditionExpression: aws.String("document_id = :document_id"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":document_id": {S: aws.String(documentID)},
		},
	}

	out, err := s.dynamoSvc.QueryWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to query chunk items", map[string]interface{}{
			"document_id": documentID,
		})
		return nil, err
	}

	var items []dynamoChunkItem
	if err = dynamodbattribute.UnmarshalListOfMaps(out.Items, &items); err != nil {
		s.logger.ErrorWithFields(err, "Failed to unmarshal chunk items", map[string]interface{}{
			"document_id": documentID,
		})
		return nil, err
	}

	chunks := make([]domain.Chunk, 0, len(items))
	for _, item := range items {
		createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)
		chunks = append(chunks, domain.Chunk{
			ID:          item.ChunkId,
			DocumentID:  item.DocumentId,
			SectionType: domain.SectionType(item.SectionType),
			Heading:     item.Heading,
			Content:     item.Content,
			ChunkOrder:  item.ChunkOrder,
			CreatedAt:   createdAt,
		})
	}
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].ChunkOrder < chunks[j].ChunkOrder
	})

	return chunks, nil
}
