// Package document holds the parsed form of a structured report.
//
// Reports produced by Brakeman and RuboCop are JSON documents of arbitrary
// schema. This package parses them into an order-preserving tree (Value) so
// that every output format renders object members in the order the tool
// wrote them. Nothing here interprets the report contents.
package document
