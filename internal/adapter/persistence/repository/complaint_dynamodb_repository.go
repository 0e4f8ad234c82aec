package repository

import (
	"context"
	"errors"

	"retail_assistant/internal/domain/entities"
	"retail_assistant/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultComplaintsTableName = "complaints"

type complaintItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	OrderID   string `dynamodbav:"order_id"`
	Complaint string `dynamodbav:"complaint"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ComplaintDynamoLog is the append-only complaint log.
//
// Table requirements:
//   - PK: id (string)
type ComplaintDynamoLog struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IComplaintLog = (*ComplaintDynamoLog)(nil)

func NewComplaintDynamoLog(ddb *dynamodb.Client, tableName string) *ComplaintDynamoLog {
	if tableName == "" {
		tableName = defaultComplaintsTableName
	}
	return &ComplaintDynamoLog{ddb: ddb, tableName: tableName}
}

// Append never overwrites an existing record. Appending an id that is already
// logged is treated as a successful retry.
func (r *ComplaintDynamoLog) Append(ctx context.Context, c entities.ComplaintRecord) error {
	av, err := attributevalue.MarshalMap(toComplaintItem(c))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *ComplaintDynamoLog) GetByID(ctx context.Context, id string) (entities.ComplaintRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ComplaintRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ComplaintRecord{}, nil
	}

	var it complaintItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ComplaintRecord{}, err
	}
	return fromComplaintItem(it), nil
}

func toComplaintItem(c entities.ComplaintRecord) complaintItem {
	return complaintItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		OrderID:   c.OrderID,
		Complaint: c.Complaint,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func fromComplaintItem(it complaintItem) entities.ComplaintRecord {
	return entities.ComplaintRecord{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		OrderID:   it.OrderID,
		Complaint: it.Complaint,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
