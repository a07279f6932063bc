package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/issuance"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var _ issuance.Repository = &DB{}

type issuanceRecordDynamo struct {
	PK          string
	SK          string
	PhoneNumber string
	IssuedAt    time.Time
}

const (
	issuanceEntityName = "ISSUANCE"
)

func issuancePK(phoneNumber string) string {
	return fmt.Sprintf("%s#%s", issuanceEntityName, phoneNumber)
}

func issuanceSK() string {
	return issuanceEntityName
}

func issuanceRecordToDynamo(record issuance.Record) issuanceRecordDynamo {
	return issuanceRecordDynamo{
		PK:          issuancePK(record.PhoneNumber),
		SK:          issuanceSK(),
		PhoneNumber: record.PhoneNumber,
		IssuedAt:    record.IssuedAt,
	}
}

func dynamoToIssuanceRecord(record issuanceRecordDynamo) issuance.Record {
	return issuance.Record{
		PhoneNumber: record.PhoneNumber,
		IssuedAt:    record.IssuedAt,
	}
}

func (d *DB) GetIssuanceRecord(ctx context.Context, phoneNumber string) (issuance.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: issuancePK(phoneNumber)},
			"SK": &types.AttributeValueMemberS{Value: issuanceSK()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return issuance.Record{}, issuance.NewTimeoutError("GetIssuanceRecord timed out")
		}
		return issuance.Record{}, issuance.NewFailedToFetchError(fmt.Sprintf("Failed to fetch issuance record for %s", phoneNumber), err)
	}

	if len(resp.Item) == 0 {
		return issuance.Record{}, issuance.NewRecordDoesNotExistError(fmt.Sprintf("Issuance record for %s not found", phoneNumber), nil)
	}

	var record issuanceRecordDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &record)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal issuance record from dynamo: %s", err))
	}

	return dynamoToIssuanceRecord(record), nil
}

func (d *DB) CreateIssuanceRecord(ctx context.Context, record issuance.Record) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	item, err := attributevalue.MarshalMap(issuanceRecordToDynamo(record))
	if err != nil {
		return issuance.NewFailedToTranslateToDBModelError("Failed to translate issuance record to dynamo model", err)
	}
	expr := exprMustBuild(expression.NewBuilder().WithCondition(newEntityConditional()))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var conditionFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailedErr) {
			return issuance.NewRecordAlreadyExistsError(fmt.Sprintf("Issuance record for %s already exists", record.PhoneNumber), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return issuance.NewTimeoutError("CreateIssuanceRecord timed out")
		}
		return issuance.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}

func (d *DB) DeleteIssuanceRecord(ctx context.Context, phoneNumber string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err := d.dynamoClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: issuancePK(phoneNumber)},
			"SK": &types.AttributeValueMemberS{Value: issuanceSK()},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return issuance.NewTimeoutError("DeleteIssuanceRecord timed out")
		}
		return issuance.NewFailedToWriteError(fmt.Sprintf("Failed to delete issuance record for %s", phoneNumber), err)
	}

	return nil
}
