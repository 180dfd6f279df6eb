package github

import "context"

// maxPageSize is the largest page the API will serve.
const maxPageSize = 100

// fetchPage retrieves one page of a listing. page is 1-based and perPage is
// the number of items requested for that page.
type fetchPage[T any] func(ctx context.Context, page, perPage int) ([]T, error)

// collectPages assembles up to limit items from a paginated endpoint.
// A non-positive limit returns nil without issuing any call. The last page
// requests exactly the remainder, and a page returning fewer items than
// requested means the upstream source is exhausted, so collection stops with
// whatever accumulated, even short of limit. Upstream ordering is trusted
// and never re-sorted.
func collectPages[T any](ctx context.Context, limit int, fetch fetchPage[T]) ([]T, error) {
	if limit <= 0 {
		return nil, nil
	}

	perPage := limit
	if perPage > maxPageSize {
		perPage = maxPageSize
	}
	totalPages := (limit + perPage - 1) / perPage

	var items []T
	for page := 1; page <= totalPages; page++ {
		need := perPage
		if remainder := limit - len(items); remainder < need {
			need = remainder
		}
		if need <= 0 {
			break
		}

		got, err := fetch(ctx, page, need)
		if err != nil {
			return nil, err
		}
		items = append(items, got...)

		if len(got) < need {
			break
		}
	}

	return items, nil
}
