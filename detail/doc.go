// Package detail assembles everything needed to render one manga detail page.
//
// A load runs three stages in order: the manga record, its characters, and its
// recommendations, with a fixed pause before each of the last two. The manga
// record is required; the other two only enrich the page and their failures are
// absorbed into empty lists.
//
//	loader := detail.NewLoader(client, logger)
//	bundle, err := loader.LoadDetail(ctx, "2")
//	if err != nil {
//		fmt.Println(detail.UserMessage(err))
//		return
//	}
//
// The loader knows nothing about presentation. Renderers consume the returned
// Bundle.
package detail
