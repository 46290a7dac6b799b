package partition

import (
	"fmt"
	"strings"

	"client-generator/internal/apidesc"
	"client-generator/internal/naming"
	"client-generator/internal/policy"
)

// Partition groups ops, which must already be filtered, into interfaces
// under p. Zero operations yield zero interfaces. On error the returned
// slice is nil.
func Partition(ops []*apidesc.Operation, p *policy.GenerationPolicy) ([]InterfaceDefinition, error) {
	if len(ops) == 0 {
		return nil, nil
	}

	resolver := naming.NewResolver(p)

	var buckets []*bucket

	switch p.Strategy() {
	case policy.StrategyNone:
		buckets = []*bucket{{name: resolver.InterfaceName(""), ops: ops}}
	case policy.StrategyByEndpoint:
		buckets = byEndpoint(ops, resolver)
	case policy.StrategyByTag:
		var err error
		if buckets, err = byTag(ops, p, resolver); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported partition strategy %s", p.Strategy())
	}

	if err := checkInterfaceNames(buckets); err != nil {
		return nil, err
	}

	defs := make([]InterfaceDefinition, 0, len(buckets))

	for _, b := range buckets {
		def, err := freeze(b, p, resolver)
		if err != nil {
			return nil, err
		}

		defs = append(defs, def)
	}

	return defs, nil
}

func byEndpoint(ops []*apidesc.Operation, resolver *naming.Resolver) []*bucket {
	buckets := make([]*bucket, 0, len(ops))

	for _, op := range ops {
		key := naming.OperationKey(op)
		buckets = append(buckets, &bucket{
			name: resolver.InterfaceName(key),
			key:  key,
			ops:  []*apidesc.Operation{op},
		})
	}

	return buckets
}

// byTag replicates each operation into every participating tag bucket.
// Tags outside a non-empty include set do not participate.
// A participating tag without letters or digits is an error.
func byTag(ops []*apidesc.Operation, p *policy.GenerationPolicy, resolver *naming.Resolver) ([]*bucket, error) {
	var (
		buckets  []*bucket
		byKey    = map[string]*bucket{}
		untagged *bucket
	)

	for _, op := range ops {
		if !op.HasTags() {
			if untagged == nil {
				untagged = &bucket{name: resolver.UntaggedInterfaceName(), untagged: true}
			}

			untagged.ops = append(untagged.ops, op)

			continue
		}

		for _, tag := range op.Tags {
			if !p.TagIncluded(tag) {
				continue
			}

			b, ok := byKey[tag]
			if !ok {
				if naming.Identifier(tag) == "" {
					return nil, &naming.GroupNameError{Key: tag}
				}

				b = &bucket{name: resolver.InterfaceName(tag), key: tag}
				byKey[tag] = b
				buckets = append(buckets, b)
			}

			b.ops = append(b.ops, op)
		}
	}

	if untagged != nil {
		buckets = append(buckets, untagged)
	}

	return buckets, nil
}

func checkInterfaceNames(buckets []*bucket) error {
	seen := make(map[string]*bucket, len(buckets))

	for _, b := range buckets {
		if prev, ok := seen[b.name]; ok {
			return &naming.InterfaceCollisionError{Name: b.name, FirstKey: prev.label(), SecondKey: b.label()}
		}

		seen[b.name] = b
	}

	return nil
}

// freeze resolves the method of every operation in b and turns the bucket
// into its final value.
func freeze(b *bucket, p *policy.GenerationPolicy, resolver *naming.Resolver) (InterfaceDefinition, error) {
	def := InterfaceDefinition{
		Name:     b.name,
		GroupKey: b.key,
		Methods:  make([]MethodSignature, 0, len(b.ops)),
	}

	owners := make(map[string]*apidesc.Operation, len(b.ops))

	for _, op := range b.ops {
		name := resolver.MethodName(op)

		if prev, ok := owners[name]; ok {
			return InterfaceDefinition{}, &naming.CollisionError{
				Interface:         b.name,
				Method:            name,
				FirstOperationID:  prev.Label(),
				SecondOperationID: op.Label(),
			}
		}

		owners[name] = op

		def.Methods = append(def.Methods, MethodSignature{
			Name:         name,
			Parameters:   resolver.ParameterOrder(op),
			Operation:    op,
			Returns:      returnKind(p),
			AcceptHeader: acceptHeader(op, p),
			Cancellable:  p.UseCancellationTokens(),
		})
	}

	return def, nil
}

func returnKind(p *policy.GenerationPolicy) ReturnKind {
	if p.ReturnAPIResponse() {
		return ReturnAPIResponse
	}

	return ReturnPayload
}

func acceptHeader(op *apidesc.Operation, p *policy.GenerationPolicy) string {
	if !p.AddAcceptHeaders() || len(op.Accepts) == 0 {
		return ""
	}

	return "Accept: " + strings.Join(op.Accepts, ", ")
}
