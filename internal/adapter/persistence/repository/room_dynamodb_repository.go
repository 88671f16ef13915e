package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/usecase/interfaces"
)

const defaultRoomsTableName = "rooms"

type roomItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	ReferenceRate float64 `dynamodbav:"reference_rate"`
	MaxOccupancy  int     `dynamodbav:"max_occupancy"`
	RateUpdatedAt string  `dynamodbav:"rate_updated_at,omitempty"`
}

// RoomDynamoRepository persists the rate catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog holds a handful of rooms, so List is a full Scan.
type RoomDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRoomRateRepository = (*RoomDynamoRepository)(nil)

func NewRoomDynamoRepository(ddb *dynamodb.Client, tableName string) *RoomDynamoRepository {
	return &RoomDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultRoomsTableName),
	}
}

func (r *RoomDynamoRepository) GetByID(ctx context.Context, id string) (entities.Room, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Room{}, err
	}
	if len(out.Item) == 0 {
		return entities.Room{}, nil
	}

	var it roomItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Room{}, err
	}
	return fromRoomItem(it), nil
}

func (r *RoomDynamoRepository) List(ctx context.Context) ([]entities.Room, error) {
	var rooms []entities.Room
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []roomItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			rooms = append(rooms, fromRoomItem(it))
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func (r *RoomDynamoRepository) Upsert(ctx context.Context, room entities.Room) error {
	av, err := attributevalue.MarshalMap(toRoomItem(room))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *RoomDynamoRepository) UpdateReferenceRate(ctx context.Context, id string, rate float64, at time.Time) (entities.Room, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #rate = :rate, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rate":       &types.AttributeValueMemberN{Value: floatToString(rate)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#rate":       "reference_rate",
			"#updated_at": "rate_updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Room{}, nil
		}
		return entities.Room{}, err
	}

	var it roomItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Room{}, err
	}
	return fromRoomItem(it), nil
}

func toRoomItem(room entities.Room) roomItem {
	return roomItem{
		ID:            room.ID,
		Name:          room.Name,
		ReferenceRate: room.ReferenceRate,
		MaxOccupancy:  room.MaxOccupancy,
		RateUpdatedAt: formatTime(room.RateUpdatedAt),
	}
}

func fromRoomItem(it roomItem) entities.Room {
	return entities.Room{
		ID:            it.ID,
		Name:          it.Name,
		ReferenceRate: it.ReferenceRate,
		MaxOccupancy:  it.MaxOccupancy,
		RateUpdatedAt: parseTime(it.RateUpdatedAt),
	}
}
