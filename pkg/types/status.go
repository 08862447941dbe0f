// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"sort"
)

// StatusDetail is the processing stage Go2UBL reports for a document.
type StatusDetail int

// Only codes confirmed by Go2UBL are named; others render as StatusDetail(n).
const (
	ReceivedByMail StatusDetail = 100
	Declined       StatusDetail = 780
	Sent           StatusDetail = 820
	Ready          StatusDetail = 1000
)

var statusDetailNames = map[StatusDetail]string{
	ReceivedByMail: "ReceivedByMail",
	Declined:       "Declined",
	Sent:           "Sent",
	Ready:          "Ready",
}

func (s StatusDetail) String() string {
	if name, ok := statusDetailNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StatusDetail(%d)", int(s))
}

// AllStatusDetails returns every known StatusDetail in ascending order.
func AllStatusDetails() []StatusDetail {
	out := make([]StatusDetail, 0, len(statusDetailNames))
	for s := range statusDetailNames {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DeclinedReason explains why Go2UBL declined a document.
type DeclinedReason int

const (
	Duplicate             DeclinedReason = 1
	MultipleSaleDocuments DeclinedReason = 10008
)

var declinedReasonNames = map[DeclinedReason]string{
	Duplicate:             "Duplicate",
	MultipleSaleDocuments: "MultipleSaleDocuments",
}

func (r DeclinedReason) String() string {
	if name, ok := declinedReasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("DeclinedReason(%d)", int(r))
}

// AllDeclinedReasons returns every known DeclinedReason in ascending order.
func AllDeclinedReasons() []DeclinedReason {
	out := make([]DeclinedReason, 0, len(declinedReasonNames))
	for r := range declinedReasonNames {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
