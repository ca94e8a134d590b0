package repository

import (
	"context"

	"paguezap/internal/config"
	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type tenantItem struct {
	ID                    string `dynamodbav:"id"`
	Name                  string `dynamodbav:"name,omitempty"`
	WhatsAppPhoneNumberID string `dynamodbav:"whatsapp_phone_number_id,omitempty"`
	WhatsAppToken         string `dynamodbav:"whatsapp_access_token,omitempty"`
	PixKey                string `dynamodbav:"pix_key,omitempty"`
	PixKeyType            string `dynamodbav:"pix_key_type,omitempty"`
	MerchantName          string `dynamodbav:"merchant_name,omitempty"`
	MercadoPagoToken      string `dynamodbav:"mercado_pago_access_token,omitempty"`
	DefaultImageURL       string `dynamodbav:"default_image_url,omitempty"`
}

// TenantDynamoRepository reads the account settings written by the dashboard.
// The billing core never writes this table.
type TenantDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ITenantConfigRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb dynamoAPI, cfg config.DynamoDBConfig) *TenantDynamoRepository {
	return &TenantDynamoRepository{ddb: ddb, tableName: cfg.TenantsTable}
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.TenantConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
	})
	if err != nil {
		return entities.TenantConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.TenantConfig{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TenantConfig{}, err
	}
	return entities.TenantConfig{
		ID:                    it.ID,
		Name:                  it.Name,
		WhatsAppPhoneNumberID: it.WhatsAppPhoneNumberID,
		WhatsAppToken:         it.WhatsAppToken,
		PixKey:                it.PixKey,
		PixKeyType:            it.PixKeyType,
		MerchantName:          it.MerchantName,
		MercadoPagoToken:      it.MercadoPagoToken,
		DefaultImageURL:       it.DefaultImageURL,
	}, nil
}
