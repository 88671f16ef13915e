package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/usecase/interfaces"
)

const defaultOverridesTableName = "price_overrides"

type priceOverrideItem struct {
	RoomID      string  `dynamodbav:"room_id"`
	ID          string  `dynamodbav:"id"`
	CustomPrice float64 `dynamodbav:"custom_price"`
	AutoPrice   float64 `dynamodbav:"auto_price"`
	SetAt       string  `dynamodbav:"set_at"`
}

// PriceOverrideDynamoRepository persists PriceOverride entities in DynamoDB.
//
// Table requirements:
//   - PK: room_id (string)
//
// Keying by room id guarantees one override per room: Put simply replaces.
type PriceOverrideDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceOverrideRepository = (*PriceOverrideDynamoRepository)(nil)

func NewPriceOverrideDynamoRepository(ddb *dynamodb.Client, tableName string) *PriceOverrideDynamoRepository {
	return &PriceOverrideDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOverridesTableName),
	}
}

func (r *PriceOverrideDynamoRepository) Get(ctx context.Context, roomID string) (entities.PriceOverride, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            overrideKey(roomID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceOverride{}, err
	}
	if len(out.Item) == 0 {
		return entities.PriceOverride{}, nil
	}

	var it priceOverrideItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PriceOverride{}, err
	}
	return fromPriceOverrideItem(it), nil
}

func (r *PriceOverrideDynamoRepository) Put(ctx context.Context, o entities.PriceOverride) error {
	av, err := attributevalue.MarshalMap(toPriceOverrideItem(o))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PriceOverrideDynamoRepository) Delete(ctx context.Context, roomID string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      overrideKey(roomID),
		ConditionExpression:      aws.String("attribute_exists(#room_id)"),
		ExpressionAttributeNames: map[string]string{"#room_id": "room_id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteAll scans the room ids and deletes them one by one. Items removed
// concurrently are skipped by the delete condition. A failure midway returns
// the ids already removed along with the error.
func (r *PriceOverrideDynamoRepository) DeleteAll(ctx context.Context) ([]string, error) {
	var cleared []string
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#room_id"),
		ExpressionAttributeNames: map[string]string{"#room_id": "room_id"},
		ConsistentRead:           aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return sortedCopy(cleared), err
		}
		for _, item := range page.Items {
			var it priceOverrideItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return sortedCopy(cleared), err
			}
			existed, err := r.Delete(ctx, it.RoomID)
			if err != nil {
				return sortedCopy(cleared), err
			}
			if existed {
				cleared = append(cleared, it.RoomID)
			}
		}
	}
	return sortedCopy(cleared), nil
}

func overrideKey(roomID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"room_id": &types.AttributeValueMemberS{Value: roomID},
	}
}

func toPriceOverrideItem(o entities.PriceOverride) priceOverrideItem {
	return priceOverrideItem{
		RoomID:      o.RoomID,
		ID:          o.ID,
		CustomPrice: o.CustomPrice,
		AutoPrice:   o.AutoPrice,
		SetAt:       formatTime(o.SetAt),
	}
}

func fromPriceOverrideItem(it priceOverrideItem) entities.PriceOverride {
	return entities.PriceOverride{
		ID:          it.ID,
		RoomID:      it.RoomID,
		CustomPrice: it.CustomPrice,
		AutoPrice:   it.AutoPrice,
		SetAt:       parseTime(it.SetAt),
	}
}
