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

type dynamoDocumentItem struct {
	DocumentId         string `dynamodbav:"document_id"`
	Title              string `dynamodbav:"title"`
	InputType          string `dynamodbav:"input_type"`
	Content            string `dynamodbav:"content"`
	FileUrl            string `dynamodbav:"file_url"`
	Status             string `dynamodbav:"status"`
	ProgressPercentage int    `dynamodbav:"progress_percentage"`
	CurrentStep        string `dynamodbav:"current_step"`
	ErrorMessage       string `dynamodbav:"error_message"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

type dynamoDocumentStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoDocumentStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.DocumentStorePort {
	return &dynamoDocumentStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoDocumentStore) Create(ctx context.Context, doc domain.Document) error {
	item := dynamoDocumentItem{
		DocumentId:         doc.ID,
		Title:              doc.Title,
		InputType:          string(doc.InputType),
		Content:            doc.Content,
		FileUrl:            doc.FileURL,
		Status:             string(doc.Status),
		ProgressPercentage: doc.ProgressPercentage,
		CurrentStep:        doc.CurrentStep,
		ErrorMessage:       doc.ErrorMessage,
		CreatedAt:          doc.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:          doc.UpdatedAt.Format(time.RFC3339Nano),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to marshal document item", map[string]interface{}{
			"document_id": doc.ID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.dynamoConfig.DocumentsTable),
	}

	if _, err = s.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		s.logger.ErrorWithFields(err, "Failed to save document item", map[string]interface{}{
			"document_id": doc.ID,
		})
		return err
	}

	return nil
}

func (s *dynamoDocumentStore) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.dynamoConfig.DocumentsTable),
		Key: map[string]*dynamodb.AttributeValue{
			"document_id": {S: aws.String(id)},
		},
		ConsistentRead: aws.Bool(true),
	}

	out, err := s.dynamoSvc.GetItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to fetch document item", map[string]interface{}{
			"document_id": id,
		})
		return nil, err
	}
	if out.Item == nil {
		return nil, outbound.ErrNotFound
	}

	var item dynamoDocumentItem
	if err = dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		s.logger.ErrorWithFields(err, "Failed to unmarshal document item", map[string]interface{}{
			"document_id": id,
		})
		return nil, err
	}

	return item.toDocument(), nil
}

func (s *dynamoDocumentStore) Update(ctx context.Context, id string, update outbound.DocumentUpdate) error {
	expr := "SET updated_at = :updated_at"
	names := map[string]*string{}
	values := map[string]*dynamodb.AttributeValue{
		":updated_at": {S: aws.String(time.Now().UTC().Format(time.RFC3339Nano))},
	}

	if update.Status != nil {
		expr += ", #status = :status"
		names["#status"] = aws.String("status")
		values[":status"] = &dynamodb.AttributeValue{S: aws.String(string(*update.Status))}
	}
	if update.ProgressPercentage != nil {
		expr += ", progress_percentage = :progress"
		values[":progress"] = &dynamodb.AttributeValue{N: aws.String(strconv.Itoa(*update.ProgressPercentage))}
	}
	if update.CurrentStep != nil {
		expr += ", current_step = :step"
		values[":step"] = &dynamodb.AttributeValue{S: aws.String(*update.CurrentStep)}
	}
	if update.ErrorMessage != nil {
		expr += ", error_message = :error_message"
		values[":error_message"] = &dynamodb.AttributeValue{S: aws.String(*update.ErrorMessage)}
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.dynamoConfig.DocumentsTable),
		Key: map[string]*dynamodb.AttributeValue{
			"document_id": {S: aws.String(id)},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(document_id)"),
	}
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}

	if _, err := s.dynamoSvc.UpdateItemWithContext(ctx, input); err != nil {
		if isConditionalCheckFailed(err) {
			return outbound.ErrNotFound
		}
		s.logger.ErrorWithFields(err, "Failed to update document item", map[string]interface{}{
			"document_id": id,
		})
		return err
	}

	return nil
}

func (i *dynamoDocumentItem) toDocument() *domain.Document {
	createdAt, _ := time.Parse(time.RFC3339Nano, i.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, i.UpdatedAt)
	return &domain.Document{
		ID:                 i.DocumentId,
		Title:              i.Title,
		InputType:          domain.InputType(i.InputType),
		Content:            i.Content,
		FileURL:            i.FileUrl,
		Status:             domain.DocumentStatus(i.Status),
		ProgressPercentage: i.ProgressPercentage,
		CurrentStep:        i.CurrentStep,
		ErrorMessage:       i.ErrorMessage,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
