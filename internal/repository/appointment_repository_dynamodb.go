package repository

import (
	"context"
	"fmt"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the appointment table.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

const appointmentKeyAttribute = "appointment_id"

type appointmentDynamoDBRepository struct {
	client DynamoDBAPI
	table  string
}

func NewAppointmentDynamoDBRepository(client DynamoDBAPI, table string) domainRepo.AppointmentRepository {
	return &appointmentDynamoDBRepository{
		client: client,
		table:  table,
	}
}

func (r *appointmentDynamoDBRepository) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		appointmentKeyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

func (r *appointmentDynamoDBRepository) Put(ctx context.Context, appointment *entity.Appointment) error {
	item, err := attributevalue.MarshalMap(appointment)
	if err != nil {
		return fmt.Errorf("marshal appointment %s: %w", appointment.ID, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put appointment %s: %w", appointment.ID, err)
	}
	return nil
}

func (r *appointmentDynamoDBRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get appointment %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var appointment entity.Appointment
	if err := attributevalue.UnmarshalMap(out.Item, &appointment); err != nil {
		return nil, fmt.Errorf("unmarshal appointment %s: %w", id, err)
	}
	return &appointment, nil
}

// UpdateState issues SET #s = :new_state without a condition expression, so an
// absent key yields a partial item holding only the key and state.
func (r *appointmentDynamoDBRepository) UpdateState(ctx context.Context, id string, state entity.AppointmentState) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.table),
		Key:              r.key(id),
		UpdateExpression: aws.String("SET #s = :new_state"),
		ExpressionAttributeNames: map[string]string{
			"#s": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new_state": &types.AttributeValueMemberS{Value: string(state)},
		},
	})
	if err != nil {
		return fmt.Errorf("update appointment %s state: %w", id, err)
	}
	return nil
}

func (r *appointmentDynamoDBRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	if err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	return nil
}
