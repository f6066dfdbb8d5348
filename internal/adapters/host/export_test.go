package host

var ExistingAncestor = existingAncestor
