// Package headerutil builds the application alert headers that tell clients
// what happened to an entity without putting that information in the body.
//
// For an application named "shopApp" a successful creation yields
//
//	X-shopApp-alert:  shopApp.customerOrder.created
//	X-shopApp-params: 42
//
// and a rejected request yields
//
//	X-shopApp-error:  error.idexists
//	X-shopApp-params: customerOrder
package headerutil

import (
	"net/http"
)

// Alerts produces alert headers for one application.
type Alerts struct {
	appName string
}

func NewAlerts(appName string) Alerts {
	return Alerts{appName: appName}
}

func (a Alerts) AlertHeader() string {
	return "X-" + a.appName + "-alert"
}

func (a Alerts) ErrorHeader() string {
	return "X-" + a.appName + "-error"
}

func (a Alerts) ParamsHeader() string {
	return "X-" + a.appName + "-params"
}

// Alert returns headers carrying a message key and its parameter.
func (a Alerts) Alert(messageKey, param string) http.Header {
	h := http.Header{}
	h.Set(a.AlertHeader(), messageKey)
	h.Set(a.ParamsHeader(), param)
	return h
}

func (a Alerts) EntityCreated(entityName, id string) http.Header {
	return a.Alert(a.appName+"."+entityName+".created", id)
}

func (a Alerts) EntityUpdated(entityName, id string) http.Header {
	return a.Alert(a.appName+"."+entityName+".updated", id)
}

func (a Alerts) EntityDeleted(entityName, id string) http.Header {
	return a.Alert(a.appName+"."+entityName+".deleted", id)
}

// Failure reports errorKey for entityName.
func (a Alerts) Failure(entityName, errorKey string) http.Header {
	h := http.Header{}
	h.Set(a.ErrorHeader(), "error."+errorKey)
	h.Set(a.ParamsHeader(), entityName)
	return h
}

// Copy adds every value of src to dst.
func Copy(dst, src http.Header) {
	for key, values := range src {
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}
