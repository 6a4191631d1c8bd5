package board

// moveRule 描述一种棋子的走法：gen 枚举目标格，valid 判断单步几何是否成立。
// 新增棋子只需在 moveRules 里登记，不改生成器本身。
type moveRule struct {
	gen   func(p *Position, from Square, moves []Move) []Move
	valid func(p *Position, from, to Square) bool
}

// 目前只有王会动，其余棋子没有登记，视为不可移动。
var moveRules = [kindCount]*moveRule{
	King: {gen: genKingMoves, valid: kingMoveValid},
}

func ruleFor(k Kind) *moveRule {
	if k <= None || k >= kindCount {
		return nil
	}
	return moveRules[k]
}

// GenerateMoves 生成 side 一方的伪合法走法（不考虑被将军）。
// 顺序固定：按行扫描起点，再按固定偏移顺序，保证搜索结果可复现。
func GenerateMoves(p *Position, side Side) []Move {
	var moves []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := p.Squares[r][c]
			if !pc.BelongsTo(side) {
				continue
			}
			rule := ruleFor(pc.Kind)
			if rule == nil {
				continue
			}
			moves = rule.gen(p, Square{Row: r, Col: c}, moves)
		}
	}
	return moves
}

// IsMoveGeometryValid 判断 from->to 对 from 上的棋子是否是一步合法的几何走法，
// 目标格必须为空或是对方棋子。
func IsMoveGeometryValid(p *Position, from, to Square) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}
	pc := p.At(from)
	if pc.IsEmpty() {
		return false
	}
	rule := ruleFor(pc.Kind)
	if rule == nil {
		return false
	}
	return rule.valid(p, from, to)
}

// IsLegal 判断 m 是否在 side 的走法列表里
func IsLegal(p *Position, side Side, m Move) bool {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return false
	}
	if !p.At(m.From).BelongsTo(side) {
		return false
	}
	return IsMoveGeometryValid(p, m.From, m.To)
}

func canLandOn(p *Position, mover Piece, to Square) bool {
	dst := p.At(to)
	return dst.IsEmpty() || dst.Side != mover.Side
}
