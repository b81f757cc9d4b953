// Package logward ships log messages to the Logward error tracking service.
//
// The Client batches messages and submits them in bulk to the messages API.
// Messages are usually produced by one of the logging framework targets --
// see the lwlogrus, lwzerolog and lwzap packages -- which map the structured
// data attached to a log entry onto the standard message fields (hostname,
// user, url, status code, cookies, form, query string, server variables)
// using a fixed cascade of well-known property names.  The cascade can be
// overridden per field with ${name} templates on the Config.
//
// Basic usage:
//
//	cfg := logward.NewConfig("API_KEY", "LOG_ID")
//	client, err := logward.NewClient(cfg)
//	if nil != err {
//		// handle error
//	}
//	defer client.Close()
//
//	log := logrus.New()
//	log.AddHook(lwlogrus.NewHook(client))
package logward
