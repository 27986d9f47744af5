package form

import (
	"testing"

	"portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema(t *testing.T, id entity.SectionID) Schema {
	t.Helper()

	schema, ok := NewRegistry().Schema(id)
	require.True(t, ok, "schema for %q must be registered", id)

	return schema
}

func TestBusinessDetailsSchema_ValidInput(t *testing.T) {
	schema := testSchema(t, entity.SectionBusinessDetails)

	answer, ferrs := schema.Validate(map[string]any{
		"legalName":    "Acme Plumbing LLC",
		"dbaName":      "Acme",
		"country":      "US",
		"contactPhone": "+1-555-0100",
		"contactEmail": "ops@acme.example",
	})
	require.Empty(t, ferrs)

	typed, ok := answer.(BusinessDetailsAnswer)
	require.True(t, ok)
	assert.Equal(t, "Acme Plumbing LLC", typed.LegalName)
	assert.Equal(t, "US", typed.Country)
}

func TestBusinessDetailsSchema_MissingRequiredFields(t *testing.T) {
	schema := testSchema(t, entity.SectionBusinessDetails)

	answer, ferrs := schema.Validate(map[string]any{
		"legalName": "Acme Plumbing LLC",
	})
	assert.Nil(t, answer)
	require.NotEmpty(t, ferrs)

	assert.True(t, ferrs.Has("contactPhone"))
	assert.True(t, ferrs.Has("contactEmail"))
	for _, ferr := range ferrs {
		if ferr.Field == "contactEmail" {
			assert.Equal(t, ReasonMissing, ferr.Reason)
		}
	}
}

func TestBusinessDetailsSchema_CountryDefaultsToUS(t *testing.T) {
	schema := testSchema(t, entity.SectionBusinessDetails)

	answer, ferrs := schema.Validate(map[string]any{
		"legalName":    "Acme Plumbing LLC",
		"contactPhone": "+1-555-0100",
		"contactEmail": "ops@acme.example",
	})
	require.Empty(t, ferrs)

	typed := answer.(BusinessDetailsAnswer)
	assert.Equal(t, "US", typed.Country)
}

func TestBusinessDetailsSchema_InvalidEmail(t *testing.T) {
	schema := testSchema(t, entity.SectionBusinessDetails)

	answer, ferrs := schema.Validate(map[string]any{
		"legalName":    "Acme Plumbing LLC",
		"contactPhone": "+1-555-0100",
		"contactEmail": "not-an-email",
	})
	assert.Nil(t, answer)
	require.Len(t, ferrs, 1)
	assert.Equal(t, "contactEmail", ferrs[0].Field)
	assert.Equal(t, ReasonInvalidFormat, ferrs[0].Reason)
}

func TestDefaultServicesSchema_BooleanMustBeLiteral(t *testing.T) {
	schema := testSchema(t, entity.SectionDefaultServices)

	answer, ferrs := schema.Validate(map[string]any{
		"acceptDefaults": "true",
	})
	assert.Nil(t, answer)
	require.NotEmpty(t, ferrs)
	assert.Equal(t, ReasonWrongType, ferrs[0].Reason)
}

func TestBusinessDetailsSchema_WrongTypesEnumeratePerField(t *testing.T) {
	schema := testSchema(t, entity.SectionBusinessDetails)

	answer, ferrs := schema.Validate(map[string]any{
		"legalName":    123,
		"contactEmail": true,
		"contactPhone": "+1-555-0100",
	})
	assert.Nil(t, answer)
	require.Len(t, ferrs, 2)
	assert.Contains(t, ferrs.Fields(), "legalName")
	assert.Contains(t, ferrs.Fields(), "contactEmail")
	for _, ferr := range ferrs {
		assert.Equal(t, ReasonWrongType, ferr.Reason)
	}
}

func TestDefaultServicesSchema_FalseIsValid(t *testing.T) {
	schema := testSchema(t, entity.SectionDefaultServices)

	answer, ferrs := schema.Validate(map[string]any{
		"acceptDefaults": false,
	})
	require.Empty(t, ferrs)

	typed := answer.(DefaultServicesAnswer)
	require.NotNil(t, typed.AcceptDefaults)
	assert.False(t, *typed.AcceptDefaults)
}

func TestDefaultServicesSchema_MissingFlag(t *testing.T) {
	schema := testSchema(t, entity.SectionDefaultServices)

	answer, ferrs := schema.Validate(map[string]any{})
	assert.Nil(t, answer)
	require.Len(t, ferrs, 1)
	assert.Equal(t, "acceptDefaults", ferrs[0].Field)
	assert.Equal(t, ReasonMissing, ferrs[0].Reason)
}

func TestLocationServicesSchema_EmptyOverridesIsValid(t *testing.T) {
	schema := testSchema(t, entity.SectionLocationServices)

	answer, ferrs := schema.Validate(map[string]any{
		"overrides": []any{},
	})
	require.Empty(t, ferrs)

	typed := answer.(LocationServicesAnswer)
	assert.Empty(t, typed.Overrides)
}

func TestLocationServicesSchema_UnknownServiceType(t *testing.T) {
	schema := testSchema(t, entity.SectionLocationServices)

	answer, ferrs := schema.Validate(map[string]any{
		"overrides": []any{
			map[string]any{
				"locationId":  "loc-1",
				"serviceType": "industrial",
				"available":   true,
			},
		},
	})
	assert.Nil(t, answer)
	require.Len(t, ferrs, 1)
	assert.Equal(t, "overrides[0].serviceType", ferrs[0].Field)
	assert.Equal(t, ReasonNotAllowed, ferrs[0].Reason)
}

func TestLocationServicesSchema_ValidOverrideRows(t *testing.T) {
	schema := testSchema(t, entity.SectionLocationServices)

	answer, ferrs := schema.Validate(map[string]any{
		"overrides": []any{
			map[string]any{
				"locationId":  "loc-1",
				"serviceType": "residential",
				"available":   true,
			},
			map[string]any{
				"locationId":  "loc-2",
				"serviceType": "emergency",
				"subType":     "after-hours",
				"available":   false,
			},
		},
	})
	require.Empty(t, ferrs)

	typed := answer.(LocationServicesAnswer)
	require.Len(t, typed.Overrides, 2)
	assert.Nil(t, typed.Overrides[0].SubType)
	require.NotNil(t, typed.Overrides[1].SubType)
	assert.Equal(t, "after-hours", *typed.Overrides[1].SubType)
}

func TestEscalationContactsSchema_EmptyEmailMeansNotProvided(t *testing.T) {
	schema := testSchema(t, entity.SectionEscalationContacts)

	answer, ferrs := schema.Validate(map[string]any{
		"primaryEscalationName":  "Dana Ops",
		"primaryEscalationEmail": "",
	})
	require.Empty(t, ferrs)

	typed := answer.(EscalationContactsAnswer)
	assert.Empty(t, typed.PrimaryEmail)
}

func TestEscalationContactsSchema_MalformedEmail(t *testing.T) {
	schema := testSchema(t, entity.SectionEscalationContacts)

	answer, ferrs := schema.Validate(map[string]any{
		"primaryEscalationName":  "Dana Ops",
		"primaryEscalationEmail": "not-an-email",
	})
	assert.Nil(t, answer)
	require.Len(t, ferrs, 1)
	assert.Equal(t, "primaryEscalationEmail", ferrs[0].Field)
	assert.Equal(t, ReasonInvalidFormat, ferrs[0].Reason)
}

func TestSellerBillingSchema_AccountTypeEnum(t *testing.T) {
	schema := testSchema(t, entity.SectionSellerBilling)

	base := func() map[string]any {
		return map[string]any{
			"bankName":         "First Example Bank",
			"achRoutingNumber": "021000021",
			"achAccountNumber": "123456789",
		}
	}

	t.Run("checking accepted", func(t *testing.T) {
		raw := base()
		raw["achAccountType"] = "checking"

		answer, ferrs := schema.Validate(raw)
		require.Empty(t, ferrs)

		typed := answer.(SellerBillingAnswer)
		require.NotNil(t, typed.ACHAccountType)
		assert.Equal(t, "checking", *typed.ACHAccountType)
	})

	t.Run("savings accepted", func(t *testing.T) {
		raw := base()
		raw["achAccountType"] = "savings"

		_, ferrs := schema.Validate(raw)
		assert.Empty(t, ferrs)
	})

	t.Run("other values rejected", func(t *testing.T) {
		raw := base()
		raw["achAccountType"] = "credit"

		answer, ferrs := schema.Validate(raw)
		assert.Nil(t, answer)
		require.Len(t, ferrs, 1)
		assert.Equal(t, "achAccountType", ferrs[0].Field)
		assert.Equal(t, ReasonNotAllowed, ferrs[0].Reason)
	})

	t.Run("absent stays nil", func(t *testing.T) {
		answer, ferrs := schema.Validate(base())
		require.Empty(t, ferrs)

		typed := answer.(SellerBillingAnswer)
		assert.Nil(t, typed.ACHAccountType)
	})
}

func TestSellerBillingSchema_RoutingNumberShape(t *testing.T) {
	schema := testSchema(t, entity.SectionSellerBilling)

	answer, ferrs := schema.Validate(map[string]any{
		"bankName":         "First Example Bank",
		"achRoutingNumber": "12345",
		"achAccountNumber": "123456789",
	})
	assert.Nil(t, answer)
	require.Len(t, ferrs, 1)
	assert.Equal(t, "achRoutingNumber", ferrs[0].Field)
	assert.Equal(t, ReasonInvalidFormat, ferrs[0].Reason)
}

func TestConfirmationSchema_MustBeLiterallyTrue(t *testing.T) {
	schema := testSchema(t, entity.SectionConfirmation)

	t.Run("true accepted", func(t *testing.T) {
		answer, ferrs := schema.Validate(map[string]any{"confirmed": true})
		require.Empty(t, ferrs)
		assert.True(t, answer.(ConfirmationAnswer).IsConfirmed())
	})

	t.Run("false rejected", func(t *testing.T) {
		answer, ferrs := schema.Validate(map[string]any{"confirmed": false})
		assert.Nil(t, answer)
		require.Len(t, ferrs, 1)
		assert.Equal(t, "confirmed", ferrs[0].Field)
		assert.Equal(t, ReasonNotAllowed, ferrs[0].Reason)
	})

	t.Run("string rejected as wrong type", func(t *testing.T) {
		answer, ferrs := schema.Validate(map[string]any{"confirmed": "yes"})
		assert.Nil(t, answer)
		require.Len(t, ferrs, 1)
		assert.Equal(t, ReasonWrongType, ferrs[0].Reason)
	})

	t.Run("missing rejected", func(t *testing.T) {
		answer, ferrs := schema.Validate(map[string]any{})
		assert.Nil(t, answer)
		require.Len(t, ferrs, 1)
		assert.Equal(t, ReasonMissing, ferrs[0].Reason)
	})
}

func TestFieldErrors_ErrorMessageListsFields(t *testing.T) {
	ferrs := FieldErrors{
		{Field: "legalName", Reason: ReasonMissing},
		{Field: "contactEmail", Reason: ReasonInvalidFormat},
	}

	assert.Equal(t, "field validation failed: legalName (missing), contactEmail (invalid_format)", ferrs.Error())
	assert.Equal(t, []string{"legalName", "contactEmail"}, ferrs.Fields())
}
