package webserver

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

var jsonFast = jsoniter.ConfigCompatibleWithStandardLibrary

// JsoniterSerializer swaps echo's default JSON codec for json-iterator.
type JsoniterSerializer struct{}

func (JsoniterSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsonFast.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (JsoniterSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := jsonFast.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(400, "unable to parse request body").SetInternal(err)
	}
	return nil
}
