package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/International-Combat-Archery-Alliance/account-signup/accounts"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var _ accounts.Repository = &DB{}

type accountDynamo struct {
	PK string
	SK string

	ID           uuid.UUID
	Version      int
	CreatedAt    time.Time
	Name         string
	Email        string
	Phone        string
	PasswordHash []byte
	IsSeller     bool
	TaxID        string
}

// Keeps emails unique across accounts; one item per lower-cased address.
type accountEmailDynamo struct {
	PK        string
	SK        string
	AccountID uuid.UUID
}

const (
	accountEntityName      = "ACCOUNT"
	accountEmailEntityName = "ACCOUNT_EMAIL"
)

func accountPK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", accountEntityName, id)
}

func accountSK() string {
	return accountEntityName
}

func accountEmailPK(email string) string {
	return fmt.Sprintf("%s#%s", accountEmailEntityName, strings.ToLower(email))
}

func accountEmailSK() string {
	return accountEmailEntityName
}

func accountToDynamo(account accounts.Account) accountDynamo {
	return accountDynamo{
		PK:           accountPK(account.ID),
		SK:           accountSK(),
		ID:           account.ID,
		Version:      account.Version,
		CreatedAt:    account.CreatedAt,
		Name:         account.Name,
		Email:        account.Email,
		Phone:        account.Phone,
		PasswordHash: account.PasswordHash,
		IsSeller:     account.IsSeller,
		TaxID:        account.TaxID,
	}
}

func dynamoToAccount(account accountDynamo) accounts.Account {
	return accounts.Account{
		ID:           account.ID,
		Version:      account.Version,
		CreatedAt:    account.CreatedAt,
		Name:         account.Name,
		Email:        account.Email,
		Phone:        account.Phone,
		PasswordHash: account.PasswordHash,
		IsSeller:     account.IsSeller,
		TaxID:        account.TaxID,
	}
}

func (d *DB) CreateAccount(ctx context.Context, account accounts.Account) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	dynamoAccount := accountToDynamo(account)
	accountItem, err := attributevalue.MarshalMap(dynamoAccount)
	if err != nil {
		return accounts.NewFailedToTranslateToDBModelError("Failed to translate account to dynamo model", err)
	}
	accountExpr := exprMustBuild(expression.NewBuilder().
		WithCondition(newEntityVersionConditional(dynamoAccount.Version)))

	emailItem, err := attributevalue.MarshalMap(accountEmailDynamo{
		PK:        accountEmailPK(account.Email),
		SK:        accountEmailSK(),
		AccountID: account.ID,
	})
	if err != nil {
		return accounts.NewFailedToTranslateToDBModelError("Failed to translate account email to dynamo model", err)
	}
	emailExpr := exprMustBuild(expression.NewBuilder().WithCondition(newEntityConditional()))

	_, err = d.dynamoClient.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                 aws.String(d.tableName),
					Item:                      emailItem,
					ConditionExpression:       emailExpr.Condition(),
					ExpressionAttributeNames:  emailExpr.Names(),
					ExpressionAttributeValues: emailExpr.Values(),
				},
			},
			{
				Put: &types.Put{
					TableName:                 aws.String(d.tableName),
					Item:                      accountItem,
					ConditionExpression:       accountExpr.Condition(),
					ExpressionAttributeNames:  accountExpr.Names(),
					ExpressionAttributeValues: accountExpr.Values(),
				},
			},
		},
	})
	if err != nil {
		var transactionFailedErr *types.TransactionCanceledException
		if errors.As(err, &transactionFailedErr) {
			if len(transactionFailedErr.CancellationReasons) > 0 && aws.ToString(transactionFailedErr.CancellationReasons[0].Code) == "ConditionalCheckFailed" {
				return accounts.NewAccountAlreadyExistsError(account.Email, err)
			}
			return accounts.NewFailedToWriteError("Version conflict error", err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return accounts.NewTimeoutError("CreateAccount timed out")
		}
		return accounts.NewFailedToWriteError("Failed TransactWriteItems call", err)
	}

	return nil
}
