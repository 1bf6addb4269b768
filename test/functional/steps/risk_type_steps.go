package steps

import (
	"net/http"
	"strings"
)

type CustomField struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Format    string `json:"format"`
	RawValues string `json:"raw_values"`
}

type RiskType struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CustomFields []CustomField `json:"custom_fields"`
}

func (fc *FeatureContext) iCreateARiskTypeNamed(name string) error {
	if err := fc.record(fc.apiDriver.CreateRiskType(name)); err != nil {
		return err
	}

	if fc.response.StatusCode == http.StatusCreated {
		var riskType RiskType
		fc.require.NoError(fc.decodeBody(&riskType))
		fc.riskTypeID = riskType.ID
	}
	return nil
}

func (fc *FeatureContext) aRiskTypeNamedExists(name string) error {
	fc.require.NoError(fc.iCreateARiskTypeNamed(name))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.body))
	return nil
}

func (fc *FeatureContext) addCustomField(format, name, rawValues string) error {
	if err := fc.record(fc.apiDriver.AddCustomField(fc.riskTypeID, name, format, rawValues)); err != nil {
		return err
	}

	if fc.response.StatusCode == http.StatusCreated {
		var field CustomField
		fc.require.NoError(fc.decodeBody(&field))
		fc.fieldIDs[name] = field.ID
	}
	return nil
}

func (fc *FeatureContext) iAddACustomFieldNamed(format, name string) error {
	return fc.addCustomField(format, name, "")
}

func (fc *FeatureContext) theRiskTypeHasACustomFieldNamed(format, name string) error {
	fc.require.NoError(fc.addCustomField(format, name, ""))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.body))
	return nil
}

func (fc *FeatureContext) theRiskTypeHasACustomFieldNamedWithValues(format, name, values string) error {
	rawValues := strings.Join(strings.Split(values, ","), "\n")
	fc.require.NoError(fc.addCustomField(format, name, rawValues))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.body))
	return nil
}

func (fc *FeatureContext) iGetTheRiskType() error {
	return fc.record(fc.apiDriver.GetRiskType(fc.riskTypeID))
}

func (fc *FeatureContext) iGetTheRiskTypeWithID(id string) error {
	return fc.record(fc.apiDriver.GetRiskType(id))
}

func (fc *FeatureContext) iListAllRiskTypes() error {
	return fc.record(fc.apiDriver.ListRiskTypes())
}

func (fc *FeatureContext) iDeleteTheRiskType() error {
	return fc.record(fc.apiDriver.DeleteRiskType(fc.riskTypeID))
}

func (fc *FeatureContext) iValidateAgainstTheField(value, fieldName string) error {
	fieldID, found := fc.fieldIDs[fieldName]
	fc.require.True(found, "unknown field %q", fieldName)
	return fc.record(fc.apiDriver.ValidateValue(fc.riskTypeID, fieldID, value))
}

func (fc *FeatureContext) theRiskTypeShouldHaveNoCustomFields() error {
	var riskType RiskType
	fc.require.NoError(fc.decodeBody(&riskType))
	fc.require.NotNil(riskType.CustomFields)
	fc.require.Empty(riskType.CustomFields)
	return nil
}

func (fc *FeatureContext) theCustomFieldsShouldBeInThatOrder(names string) error {
	var riskType RiskType
	fc.require.NoError(fc.decodeBody(&riskType))

	actual := make([]string, len(riskType.CustomFields))
	for i, field := range riskType.CustomFields {
		actual[i] = field.Name
	}
	fc.require.Equal(strings.Split(names, ", "), actual)
	return nil
}

func (fc *FeatureContext) theListShouldContainTheRiskTypeExactlyAsFetched() error {
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)

	var list []RiskType
	fc.require.NoError(fc.decodeBody(&list))

	fc.require.NoError(fc.iGetTheRiskType())
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)
	var single RiskType
	fc.require.NoError(fc.decodeBody(&single))

	for _, riskType := range list {
		if riskType.ID == single.ID {
			fc.require.Equal(single, riskType)
			return nil
		}
	}
	fc.require.Failf("risk type missing from list", "risk type %s not listed", single.ID)
	return nil
}
