package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-todo-api/internal/domain"
)

// Mutations require the target key attributes to already exist, so an update
// can never silently create a row and the losing side of a delete race gets a
// clean not-found.
const taskExistsCond = "attribute_exists(user_id) AND attribute_exists(task_id)"

// TaskRepo provides typed DynamoDB operations for the tasks table
// (user_id partition key, task_id sort key).
type TaskRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewTaskRepo(client *dynamodb.Client, tableName string) *TaskRepo {
	return &TaskRepo{client: client, tableName: tableName}
}

func (r *TaskRepo) Put(ctx context.Context, t *domain.Task) error {
	item, err := attributevalue.MarshalMap(t)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return translateErr(err, nil)
}

// ListByUser returns every task under the user's partition.
func (r *TaskRepo) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, translateErr(err, nil)
	}
	tasks := []domain.Task{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies a partial update and returns the item as written.
// A failed existence condition maps to ErrNotFound.
func (r *TaskRepo) Update(ctx context.Context, userID, taskID string, updates map[string]interface{}) (*domain.Task, error) {
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return nil, err
	}
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       compositeKey("user_id", userID, "task_id", taskID),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String(taskExistsCond),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, translateErr(err, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound))
	}
	var t domain.Task
	if err := attributevalue.UnmarshalMap(out.Attributes, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a task; deleting an absent task is ErrNotFound.
func (r *TaskRepo) Delete(ctx context.Context, userID, taskID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 compositeKey("user_id", userID, "task_id", taskID),
		ConditionExpression: aws.String(taskExistsCond),
	})
	return translateErr(err, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound))
}
