package service

const (
	instructions = `Instructions:
- Use different shapes, colors and also use icons when possible as mentioned in the doc
- Do not add Note and do not explain the code and do not add any additional text except code
- Do not use 'end' syntax
- Do not use any parenthesis inside block`

	subjectTemplate = "Create a %s diagram in mermaid syntax about: %s"
)
