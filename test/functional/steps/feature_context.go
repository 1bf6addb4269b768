package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"insurance-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver  *driver.APIDriver
	response   *http.Response
	body       []byte
	runID      string
	userID     string
	riskTypeID string
	accountID  string
	fieldIDs   map[string]string
	require    *require.Assertions
	t          godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	// User steps
	ctx.Given(`^a user named "([^"]*)" exists$`, fc.aUserNamedExists)
	ctx.When(`^I create a user named "([^"]*)"$`, fc.iCreateAUserNamed)

	// Risk type steps
	ctx.Given(`^a risk type named "([^"]*)" exists$`, fc.aRiskTypeNamedExists)
	ctx.When(`^I create a risk type named "([^"]*)"$`, fc.iCreateARiskTypeNamed)
	ctx.Given(`^the risk type has a "([^"]*)" custom field named "([^"]*)"$`, fc.theRiskTypeHasACustomFieldNamed)
	ctx.Given(`^the risk type has a "([^"]*)" custom field named "([^"]*)" with values "([^"]*)"$`, fc.theRiskTypeHasACustomFieldNamedWithValues)
	ctx.When(`^I add a "([^"]*)" custom field named "([^"]*)"$`, fc.iAddACustomFieldNamed)
	ctx.When(`^I get the risk type$`, fc.iGetTheRiskType)
	ctx.When(`^I get the risk type with ID "([^"]*)"$`, fc.iGetTheRiskTypeWithID)
	ctx.When(`^I list all risk types$`, fc.iListAllRiskTypes)
	ctx.When(`^I delete the risk type$`, fc.iDeleteTheRiskType)
	ctx.When(`^I validate "([^"]*)" against the "([^"]*)" field$`, fc.iValidateAgainstTheField)
	ctx.Then(`^the risk type should have no custom fields$`, fc.theRiskTypeShouldHaveNoCustomFields)
	ctx.Then(`^the custom fields should be "([^"]*)" in that order$`, fc.theCustomFieldsShouldBeInThatOrder)
	ctx.Then(`^the list should contain the risk type exactly as it is fetched by ID$`, fc.theListShouldContainTheRiskTypeExactlyAsFetched)

	// Account steps
	ctx.Given(`^an account exists for the user on the risk type$`, fc.anAccountExistsForTheUserOnTheRiskType)
	ctx.When(`^I open an account for user "([^"]*)" on the risk type$`, fc.iOpenAnAccountForUserOnTheRiskType)
	ctx.When(`^I set the "([^"]*)" value to:$`, fc.iSetTheValueTo)
	ctx.When(`^I get the account$`, fc.iGetTheAccount)
	ctx.When(`^I close the account$`, fc.iCloseTheAccount)
	ctx.When(`^I list the accounts of the user$`, fc.iListTheAccountsOfTheUser)
	ctx.Then(`^the value should be (valid|invalid)$`, fc.theValueShouldBe)
	ctx.Then(`^the edit markup should be:$`, fc.theEditMarkupShouldBe)
	ctx.Then(`^the display markup should be:$`, fc.theDisplayMarkupShouldBe)
	ctx.Then(`^the account should have (\d+) custom values$`, fc.theAccountShouldHaveCustomValues)
	ctx.Then(`^the list should contain (\d+) accounts$`, fc.theListShouldContainAccounts)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.body = nil
	fc.runID = uuid.NewString()[:8]
	fc.userID = ""
	fc.riskTypeID = ""
	fc.accountID = ""
	fc.fieldIDs = make(map[string]string)
}

// record keeps the response and its body so later steps can read it more than once.
func (fc *FeatureContext) record(resp *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	fc.response = resp
	fc.body = body
	return nil
}

func (fc *FeatureContext) decodeBody(target any) error {
	return json.Unmarshal(fc.body, target)
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.NotNil(fc.response, "no request was made")
	fc.require.Equal(code, fc.response.StatusCode, string(fc.body))
	return nil
}
