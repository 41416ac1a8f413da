// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"context"

	"github.com/Jeffail/gabs"
)

// FetchProteins queries the EBI Proteins endpoint once per accession. The
// result has the same length and order as ids. A failed call on one id is
// logged and replaced by Degraded(0) so the remaining ids are still fetched;
// only context cancellation aborts the loop.
func (c *Client) FetchProteins(ctx context.Context, ids []string) ([]*gabs.Container, error) {
	out := make([]*gabs.Container, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		doc, err := c.fetch(ctx, c.Config.ProteinBase, id)
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			c.Logger.Warnw("protein lookup failed", "accession", id, "error", err)
			doc = Degraded(0)
		}
		out = append(out, doc)
	}
	return out, nil
}
