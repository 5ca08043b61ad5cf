package importer

import "io"

type Service struct {
	parser *Parser
}

func NewService() *Service {
	return &Service{parser: NewParser()}
}

// Parse turns a CSV stream into expense create params plus a skipped
// row report. The caller decides whether and how to commit them.
func (s *Service) Parse(r io.Reader) (*Result, error) {
	return s.parser.Parse(r)
}
