package repository

import (
	"context"
	"sort"
	"strings"

	"paguezap/internal/config"
	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type chargeItem struct {
	ID                string `dynamodbav:"id"`
	TenantID          string `dynamodbav:"user_id"`
	CustomerName      string `dynamodbav:"customer_name"`
	CustomerPhone     string `dynamodbav:"customer_phone"`
	CustomerEmail     string `dynamodbav:"customer_email,omitempty"`
	Amount            string `dynamodbav:"amount"`
	Description       string `dynamodbav:"description"`
	ProductName       string `dynamodbav:"product_name,omitempty"`
	ImageURL          string `dynamodbav:"image_url,omitempty"`
	DueDate           string `dynamodbav:"due_date,omitempty"`
	ScheduleType      string `dynamodbav:"schedule_type"`
	ScheduleDay       int    `dynamodbav:"schedule_day,omitempty"`
	NextSendDate      string `dynamodbav:"next_send_date,omitempty"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	SentAt            string `dynamodbav:"sent_at,omitempty"`
	PaidAt            string `dynamodbav:"paid_at,omitempty"`
	CancelledAt       string `dynamodbav:"cancelled_at,omitempty"`
	PixReferenceID    string `dynamodbav:"pix_reference_id,omitempty"`
	PixCode           string `dynamodbav:"pix_code,omitempty"`
	MercadoPagoLink   string `dynamodbav:"mercado_pago_link,omitempty"`
	WhatsAppMessageID string `dynamodbav:"whatsapp_message_id,omitempty"`
}

// ChargeDynamoRepository persists Charge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-next_send_date-index (PK: status, SK: next_send_date)
//   - GSI status-created_at-index (PK: status, SK: created_at)

type ChargeDynamoRepository struct {
	ddb           dynamoAPI
	tableName     string
	nextSendIndex string
	createdIndex  string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb dynamoAPI, cfg config.DynamoDBConfig) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{
		ddb:           ddb,
		tableName:     cfg.ChargesTable,
		nextSendIndex: cfg.StatusNextSendIndex,
		createdIndex:  cfg.StatusCreatedIndex,
	}
}

func (r *ChargeDynamoRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toChargeItem(c)); err != nil {
		return entities.Charge{}, err
	}
	return c, nil
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Item) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

// UpdateFields writes the non-nil fields of update. When expectedStatus is set the
// write only happens while the stored status still equals it.
func (r *ChargeDynamoRepository) UpdateFields(ctx context.Context, id string, update entities.ChargeUpdate, expectedStatus entities.ChargeStatus) (entities.Charge, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	sets := make([]string, 0, 8)
	values := map[string]types.AttributeValue{}
	names := map[string]string{"#id": "id"}
	set := func(attr, value string) {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = stringAttr(value)
	}

	if update.Status != nil {
		set("status", string(*update.Status))
	}
	if update.SentAt != nil {
		set("sent_at", formatTime(*update.SentAt))
	}
	if update.PaidAt != nil {
		set("paid_at", formatTime(*update.PaidAt))
	}
	if update.CancelledAt != nil {
		set("cancelled_at", formatTime(*update.CancelledAt))
	}
	if update.PixReferenceID != nil {
		set("pix_reference_id", *update.PixReferenceID)
	}
	if update.PixCode != nil {
		set("pix_code", *update.PixCode)
	}
	if update.MercadoPagoLink != nil {
		set("mercado_pago_link", *update.MercadoPagoLink)
	}
	if update.WhatsAppMessageID != nil {
		set("whatsapp_message_id", *update.WhatsAppMessageID)
	}

	condition := "attribute_exists(#id)"
	if expectedStatus != "" {
		condition += " AND #status = :expected_status"
		names["#status"] = "status"
		values[":expected_status"] = stringAttr(string(expectedStatus))
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConditionExpression:                 aws.String(condition),
		UpdateExpression:                    aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            names,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := isConditionalCheckFailed(err); ok {
			if len(cfe.Item) == 0 {
				return entities.Charge{}, nil
			}
			return entities.Charge{}, interfaces.ErrStatusConflict
		}
		return entities.Charge{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Charge{}, nil
	}
	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

// FindMany queries one status partition at a time and merges the results.
// NextSendBefore selects the next-send index; otherwise the created-at index is used.
func (r *ChargeDynamoRepository) FindMany(ctx context.Context, filter entities.ChargeFilter) ([]entities.Charge, error) {
	ascending := filter.Order != entities.SortDescending
	byNextSend := filter.NextSendBefore != nil

	var all []entities.Charge
	for _, status := range filter.Statuses {
		items, err := r.queryStatus(ctx, status, filter, ascending)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}

	sortKey := func(c entities.Charge) string {
		if byNextSend {
			return formatTimePtr(c.NextSendDate)
		}
		return formatTime(c.CreatedAt)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if ascending {
			return sortKey(all[i]) < sortKey(all[j])
		}
		return sortKey(all[i]) > sortKey(all[j])
	})

	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}
	return all, nil
}

func (r *ChargeDynamoRepository) queryStatus(ctx context.Context, status entities.ChargeStatus, filter entities.ChargeFilter, ascending bool) ([]entities.Charge, error) {
	in := &dynamodb.QueryInput{
		TableName:        aws.String(r.tableName),
		ScanIndexForward: aws.Bool(ascending),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": stringAttr(string(status)),
		},
	}

	switch {
	case filter.NextSendBefore != nil:
		in.IndexName = aws.String(r.nextSendIndex)
		in.KeyConditionExpression = aws.String("#status = :status AND #next_send_date <= :before")
		in.ExpressionAttributeNames["#next_send_date"] = "next_send_date"
		in.ExpressionAttributeValues[":before"] = stringAttr(formatTime(*filter.NextSendBefore))
	case filter.CreatedAfter != nil:
		in.IndexName = aws.String(r.createdIndex)
		in.KeyConditionExpression = aws.String("#status = :status AND #created_at >= :after")
		in.ExpressionAttributeNames["#created_at"] = "created_at"
		in.ExpressionAttributeValues[":after"] = stringAttr(formatTime(*filter.CreatedAfter))
	default:
		in.IndexName = aws.String(r.createdIndex)
		in.KeyConditionExpression = aws.String("#status = :status")
	}
	if filter.Limit > 0 {
		in.Limit = aws.Int32(int32(filter.Limit))
	}

	var out []entities.Charge
	for {
		page, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it chargeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromChargeItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 || (filter.Limit > 0 && len(out) >= filter.Limit) {
			break
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
	return out, nil
}

func toChargeItem(c entities.Charge) chargeItem {
	return chargeItem{
		ID:                c.ID,
		TenantID:          c.TenantID,
		CustomerName:      c.CustomerName,
		CustomerPhone:     c.CustomerPhone,
		CustomerEmail:     c.CustomerEmail,
		Amount:            c.Amount.String(),
		Description:       c.Description,
		ProductName:       c.ProductName,
		ImageURL:          c.ImageURL,
		DueDate:           formatTimePtr(c.DueDate),
		ScheduleType:      string(c.ScheduleType),
		ScheduleDay:       c.ScheduleDay,
		NextSendDate:      formatTimePtr(c.NextSendDate),
		Status:            string(c.Status),
		CreatedAt:         formatTime(c.CreatedAt),
		SentAt:            formatTimePtr(c.SentAt),
		PaidAt:            formatTimePtr(c.PaidAt),
		CancelledAt:       formatTimePtr(c.CancelledAt),
		PixReferenceID:    c.PixReferenceID,
		PixCode:           c.PixCode,
		MercadoPagoLink:   c.MercadoPagoLink,
		WhatsAppMessageID: c.WhatsAppMessageID,
	}
}

func fromChargeItem(it chargeItem) entities.Charge {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.Charge{
		ID:                it.ID,
		TenantID:          it.TenantID,
		CustomerName:      it.CustomerName,
		CustomerPhone:     it.CustomerPhone,
		CustomerEmail:     it.CustomerEmail,
		Amount:            amount,
		Description:       it.Description,
		ProductName:       it.ProductName,
		ImageURL:          it.ImageURL,
		DueDate:           parseTimePtr(it.DueDate),
		ScheduleType:      entities.ScheduleType(it.ScheduleType),
		ScheduleDay:       it.ScheduleDay,
		NextSendDate:      parseTimePtr(it.NextSendDate),
		Status:            entities.ChargeStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		SentAt:            parseTimePtr(it.SentAt),
		PaidAt:            parseTimePtr(it.PaidAt),
		CancelledAt:       parseTimePtr(it.CancelledAt),
		PixReferenceID:    it.PixReferenceID,
		PixCode:           it.PixCode,
		MercadoPagoLink:   it.MercadoPagoLink,
		WhatsAppMessageID: it.WhatsAppMessageID,
	}
}
