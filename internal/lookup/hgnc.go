// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"context"
	"fmt"

	"github.com/Jeffail/gabs"
)

// FetchGene queries the HGNC fetch-by-symbol endpoint and returns the parsed
// response unmodified. A non-success status yields Degraded(status).
func (c *Client) FetchGene(ctx context.Context, symbol string) (*gabs.Container, error) {
	if symbol == "" {
		return nil, fmt.Errorf("empty gene symbol")
	}
	doc, err := c.fetch(ctx, c.Config.GeneBase, symbol)
	if err != nil {
		return nil, fmt.Errorf("HGNC lookup %s: %w", symbol, err)
	}
	return doc, nil
}

// GeneDocs returns the documents under response.docs of an HGNC reply.
// Degraded replies and replies without the list yield nil.
func GeneDocs(resp *gabs.Container) []*gabs.Container {
	if resp == nil {
		return nil
	}
	arr, ok := resp.Search("response", "docs").Data().([]interface{})
	if !ok {
		return nil
	}
	docs := make([]*gabs.Container, 0, len(arr))
	for _, d := range arr {
		child, err := gabs.Consume(d)
		if err != nil {
			continue
		}
		docs = append(docs, child)
	}
	return docs
}
