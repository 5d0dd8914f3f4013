/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import (
	"errors"
	"net/url"
	"strconv"

	serverconst "github.com/lattice-hq/lattice/internal/system/constants"
)

// Pagination errors returned by ParsePageParams.
var (
	ErrInvalidPage    = errors.New("page must be a positive integer")
	ErrInvalidPerPage = errors.New("per_page must be a positive integer")
	ErrPerPageTooBig  = errors.New("per_page exceeds the maximum page size")
)

// PageParams carries the page and per_page query parameters of a list request.
type PageParams struct {
	Page    int
	PerPage int
}

// Offset returns the row offset of the page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ParsePageParams parses page and per_page query parameters. Missing
// parameters default to the first page with the server default page size.
func ParsePageParams(query url.Values) (PageParams, error) {
	params := PageParams{
		Page:    1,
		PerPage: serverconst.DefaultPageSize,
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return PageParams{}, ErrInvalidPage
		}
		params.Page = page
	}

	if perPageStr := query.Get("per_page"); perPageStr != "" {
		perPage, err := strconv.Atoi(perPageStr)
		if err != nil || perPage < 1 {
			return PageParams{}, ErrInvalidPerPage
		}
		if perPage > serverconst.MaxPageSize {
			return PageParams{}, ErrPerPageTooBig
		}
		params.PerPage = perPage
	}

	return params, nil
}
