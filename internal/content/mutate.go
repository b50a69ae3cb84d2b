package content

import (
	"context"
	"encoding/json"
	"fmt"
)

type mutation map[string]any

type mutateResponse struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string          `json:"id"`
		Operation string          `json:"operation"`
		Document  json.RawMessage `json:"document"`
	} `json:"results"`
}

func (c *Client) mutate(ctx context.Context, muts []mutation, returnDocs bool) (*mutateResponse, error) {
	u := c.endpoint("data/mutate") + "?visibility=sync"
	if returnDocs {
		u += "&returnDocuments=true"
	}
	var out mutateResponse
	if err := c.doJSON(ctx, "POST", u, map[string]any{"mutations": muts}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create stores a new document and returns it with the server-assigned ID
// and revision.
func (c *Client) Create(ctx context.Context, doc any) (json.RawMessage, error) {
	resp, err := c.mutate(ctx, []mutation{{"create": doc}}, true)
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 || len(resp.Results[0].Document) == 0 {
		return nil, fmt.Errorf("content: create returned no document")
	}
	return resp.Results[0].Document, nil
}

// Delete removes a document by ID. Deleting an ID that no longer exists is
// ErrNotFound; the store cannot undo a delete.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.mutate(ctx, []mutation{{"delete": map[string]string{"id": id}}}, false)
	if err != nil {
		return err
	}
	if len(resp.Results) == 0 {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	return nil
}

// PatchBuilder accumulates a whole-document replace-by-set for one document.
type PatchBuilder struct {
	c     *Client
	id    string
	set   any
	ifRev string
}

// Patch starts a patch against the given document ID.
func (c *Client) Patch(id string) *PatchBuilder {
	return &PatchBuilder{c: c, id: id}
}

// Set stages the fields to write. Callers here always pass the full document
// shape; the store treats it as field-wise assignment.
func (p *PatchBuilder) Set(fields any) *PatchBuilder {
	p.set = fields
	return p
}

// IfRevision guards the commit: the patch only applies if the stored
// revision still equals rev. A stale revision fails the commit with
// ErrRevisionMismatch instead of silently dropping the other writer's
// changes.
func (p *PatchBuilder) IfRevision(rev string) *PatchBuilder {
	p.ifRev = rev
	return p
}

// Commit applies the patch and returns the updated document.
func (p *PatchBuilder) Commit(ctx context.Context) (json.RawMessage, error) {
	if p.id == "" {
		return nil, fmt.Errorf("content: patch requires a document id")
	}
	body := map[string]any{"id": p.id, "set": p.set}
	if p.ifRev != "" {
		body["ifRevisionID"] = p.ifRev
	}
	resp, err := p.c.mutate(ctx, []mutation{{"patch": body}}, true)
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: id %s", ErrNotFound, p.id)
	}
	return resp.Results[0].Document, nil
}
