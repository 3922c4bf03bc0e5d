package green

// Kind classifies what grammar construct or token category a node or
// token represents. The value space is owned by the embedding language;
// this package treats kinds as opaque tags and only ever compares them.
type Kind uint16
