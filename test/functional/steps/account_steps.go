package steps

import (
	"net/http"

	"github.com/cucumber/godog"
)

type CustomValue struct {
	FieldID   string `json:"field_id"`
	FieldName string `json:"field_name"`
	Value     string `json:"value"`
	Edit      string `json:"edit"`
	Display   string `json:"display"`
	Valid     bool   `json:"valid"`
}

type Account struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	RiskTypeID   string        `json:"risk_type_id"`
	CustomValues []CustomValue `json:"custom_values"`
}

type SetValueResult struct {
	Valid   bool   `json:"valid"`
	Edit    string `json:"edit"`
	Display string `json:"display"`
}

func (fc *FeatureContext) anAccountExistsForTheUserOnTheRiskType() error {
	fc.require.NoError(fc.record(fc.apiDriver.OpenAccount(fc.userID, fc.riskTypeID)))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.body))

	var account Account
	fc.require.NoError(fc.decodeBody(&account))
	fc.accountID = account.ID
	return nil
}

func (fc *FeatureContext) iOpenAnAccountForUserOnTheRiskType(userID string) error {
	return fc.record(fc.apiDriver.OpenAccount(userID, fc.riskTypeID))
}

func (fc *FeatureContext) iSetTheValueTo(fieldName string, value *godog.DocString) error {
	fieldID, found := fc.fieldIDs[fieldName]
	fc.require.True(found, "unknown field %q", fieldName)
	return fc.record(fc.apiDriver.SetCustomValue(fc.accountID, fieldID, value.Content))
}

func (fc *FeatureContext) iGetTheAccount() error {
	return fc.record(fc.apiDriver.GetAccount(fc.accountID))
}

func (fc *FeatureContext) iCloseTheAccount() error {
	return fc.record(fc.apiDriver.CloseAccount(fc.accountID))
}

func (fc *FeatureContext) iListTheAccountsOfTheUser() error {
	return fc.record(fc.apiDriver.ListUserAccounts(fc.userID, 1, 10))
}

// theValueShouldBe reads the outcome of either the validate endpoint or a value update.
func (fc *FeatureContext) theValueShouldBe(outcome string) error {
	var result SetValueResult
	fc.require.NoError(fc.decodeBody(&result))
	fc.require.Equal(outcome == "valid", result.Valid)
	return nil
}

func (fc *FeatureContext) theEditMarkupShouldBe(expected *godog.DocString) error {
	var result SetValueResult
	fc.require.NoError(fc.decodeBody(&result))
	fc.require.Equal(expected.Content, result.Edit)
	return nil
}

func (fc *FeatureContext) theDisplayMarkupShouldBe(expected *godog.DocString) error {
	var result SetValueResult
	fc.require.NoError(fc.decodeBody(&result))
	fc.require.Equal(expected.Content, result.Display)
	return nil
}

func (fc *FeatureContext) theAccountShouldHaveCustomValues(count int) error {
	var account Account
	fc.require.NoError(fc.decodeBody(&account))
	fc.require.Len(account.CustomValues, count)
	return nil
}

func (fc *FeatureContext) theListShouldContainAccounts(count int) error {
	var page PaginatedResponse[Account]
	fc.require.NoError(fc.decodeBody(&page))
	fc.require.Len(page.Data, count)
	fc.require.Equal(count, page.Pagination.Total)
	return nil
}
