package adapters

import (
	"context"
	"strconv"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/config"
	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

type dynamoAudioOutputItem struct {
	DocumentId      string  `dynamodbav:"document_id"`
	OutputId        string  `dynamodbav:"output_id"`
	ScriptText      string  `dynamodbav:"script_text"`
	AudioUrl        string  `dynamodbav:"audio_url"`
	DurationSeconds float64 `dynamodbav:"duration_seconds"`
	FileSizeBytes   int64   `dynamodbav:"file_size_bytes"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// dynamoAudioOutputStore keys audio outputs by document_id alone; a
// document has at most one script/audio record.
type dynamoAudioOutputStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoAudioOutputStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.AudioOutputStorePort {
	return &dynamoAudioOutputStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoAudioOutputStore) Create(ctx context.Context, output domain.AudioOutput) error {
	item := dynamoAudioOutputItem{
		DocumentId:      output.DocumentID,
		OutputId:        output.ID,
		ScriptText:      output.ScriptText,
		AudioUrl:        output.AudioURL,
		DurationSeconds: output.DurationSeconds,
		FileSizeBytes:   output.FileSizeBytes,
		CreatedAt:       output.CreatedAt.Format(time.RFC3339Nano),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to marshal audio output item", map[string]interface{}{
			"document_id": output.DocumentID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.dynamoConfig.AudioOutputsTable),
	}
	if _, err = s.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		s.logger.ErrorWithFields(err, "Failed to save audio output item", map[string]interface{}{
			"document_id": output.DocumentID,
		})
		return err
	}

	return nil
}

func (s *dynamoAudioOutputStore) GetByDocumentID(ctx context.Context, documentID string) (*domain.AudioOutput, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.dynamoConfig.AudioOutputsTable),
		Key: map[string]*dynamodb.AttributeValue{
			"document_id": {S: aws.String(documentID)},
		},
		ConsistentRead: aws.Bool(true),
	}

	out, err := s.dynamoSvc.GetItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to fetch audio output item", map[string]interface{}{
			"document_id": documentID,
		})
		return nil, err
	}
	if out.Item == nil {
		return nil, outbound.ErrNotFound
	}

	var item dynamoAudioOutputItem
	if err = dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		s.logger.ErrorWithFields(err, "Failed to unmarshal audio output item", map[string]interface{}{
			"document_id": documentID,
		})
		return nil, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)
	return &domain.AudioOutput{
		ID:              item.OutputId,
		DocumentID:      item.DocumentId,
		ScriptText:      item.ScriptText,
		AudioURL:        item.AudioUrl,
		DurationSeconds: item.DurationSeconds,
		FileSizeBytes:   item.FileSizeBytes,
		CreatedAt:       createdAt,
	}, nil
}

func (s *dynamoAudioOutputStore) UpdateByDocumentID(ctx context.Context, documentID string, update outbound.AudioOutputUpdate) error {
	expr := ""
	values := map[string]*dynamodb.AttributeValue{}

	if update.AudioURL != nil {
		expr = appendSet(expr, "audio_url = :audio_url")
		values[":audio_url"] = &dynamodb.AttributeValue{S: aws.String(*update.AudioURL)}
	}
	if update.DurationSeconds != nil {
		expr = appendSet(expr, "duration_seconds = :duration_seconds")
		values[":duration_seconds"] = &dynamodb.AttributeValue{N: aws.String(strconv.FormatFloat(*update.DurationSeconds, 'f', -1, 64))}
	}
	if update.FileSizeBytes != nil {
		expr = appendSet(expr, "file_size_bytes = :file_size_bytes")
		values[":file_size_bytes"] = &dynamodb.AttributeValue{N: aws.String(strconv.FormatInt(*update.FileSizeBytes, 10))}
	}
	if expr == "" {
		return nil
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.dynamoConfig.AudioOutputsTable),
		Key: map[string]*dynamodb.AttributeValue{
			"document_id": {S: aws.String(documentID)},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(document_id)"),
	}

	if _, err := s.dynamoSvc.UpdateItemWithContext(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			return outbound.ErrNotFound
		}
		s.logger.ErrorWithFields(err, "Failed to update audio output item", map[string]interface{}{
			"document_id": documentID,
		})
		return err
	}

	return nil
}

func appendSet(expr string, clause string) string {
	if expr == "" {
		return "SET " + clause
	}
	return expr + ", " + clause
}
